package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// Decomposition 门内牌的一种拆分: 雀头 + needed 个面子
type Decomposition struct {
	Head   core.Key
	Blocks []Block
}

// Decompose 穷举门内牌的所有拆分
// 雀头按规范序号依次尝试, 之后总是处理最小的剩余牌种, 同一多重集不会重复枚举排列
func Decompose(counts core.Counts, needed int) []Decomposition {
	if needed < 0 {
		return nil
	}

	var result []Decomposition
	for idx := 0; idx < core.KeyCount; idx++ {
		if counts[idx] < 2 {
			continue
		}
		counts[idx] -= 2
		d := &decomposer{counts: counts, needed: needed, head: core.KeyAt(idx)}
		d.search(0)
		result = append(result, d.found...)
		counts[idx] += 2
	}
	return result
}

type decomposer struct {
	counts core.Counts
	needed int
	head   core.Key
	stack  []Block
	found  []Decomposition
}

func (d *decomposer) search(from int) {
	idx := from
	for idx < core.KeyCount && d.counts[idx] == 0 {
		idx++
	}

	if idx == core.KeyCount {
		if len(d.stack) == d.needed {
			blocks := make([]Block, len(d.stack))
			copy(blocks, d.stack)
			d.found = append(d.found, Decomposition{Head: d.head, Blocks: blocks})
		}
		return
	}
	if len(d.stack) == d.needed {
		return
	}

	key := core.KeyAt(idx)

	if d.counts[idx] >= 3 {
		d.counts[idx] -= 3
		d.stack = append(d.stack, Block{Kind: BlockTriplet, Key: key})
		d.search(idx)
		d.stack = d.stack[:len(d.stack)-1]
		d.counts[idx] += 3
	}

	// 字牌不能组顺子; 同花色内 rank<=7 才有后两张
	if !key.IsHonor() && key.Rank <= 7 && d.counts[idx+1] > 0 && d.counts[idx+2] > 0 {
		d.counts[idx]--
		d.counts[idx+1]--
		d.counts[idx+2]--
		d.stack = append(d.stack, Block{Kind: BlockRun, Key: key})
		d.search(idx)
		d.stack = d.stack[:len(d.stack)-1]
		d.counts[idx]++
		d.counts[idx+1]++
		d.counts[idx+2]++
	}
}
