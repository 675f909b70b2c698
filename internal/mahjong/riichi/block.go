package riichi

import (
	"strings"

	"sudooom.mahjong.score/internal/mahjong/core"
)

// BlockKind 面子种类
type BlockKind int8

const (
	BlockRun     BlockKind = iota // 顺子
	BlockTriplet                  // 刻子
	BlockQuad                     // 杠子
	BlockPair                     // 雀头
)

func (k BlockKind) String() string {
	switch k {
	case BlockRun:
		return "run"
	case BlockTriplet:
		return "triplet"
	case BlockQuad:
		return "quad"
	case BlockPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Block 一个面子. 顺子的 Key 为最小的那张
type Block struct {
	Kind BlockKind
	Key  core.Key

	// Declared 来自副露; RonCompleted 荣和完成的双碰刻子, 计符/暗刻时按明刻处理
	Declared     bool
	RonCompleted bool
}

// Size 占用的牌数
func (b Block) Size() int {
	switch b.Kind {
	case BlockQuad:
		return 4
	case BlockPair:
		return 2
	default:
		return 3
	}
}

// IsSet 是否刻子或杠子
func (b Block) IsSet() bool {
	return b.Kind == BlockTriplet || b.Kind == BlockQuad
}

// Contains 是否包含某牌种
func (b Block) Contains(k core.Key) bool {
	if b.Kind != BlockRun {
		return b.Key == k
	}
	return k.Suit == b.Key.Suit && k.Rank >= b.Key.Rank && k.Rank <= b.Key.Rank+2
}

// HasTerminalOrHonor 是否含幺九牌
func (b Block) HasTerminalOrHonor() bool {
	if b.Kind == BlockRun {
		return b.Key.Rank == 1 || b.Key.Rank == 7
	}
	return b.Key.IsTerminalOrHonor()
}

func (b Block) String() string {
	if b.Kind != BlockRun {
		return strings.Repeat(b.Key.String(), b.Size())
	}
	var sb strings.Builder
	for i := int8(0); i < 3; i++ {
		k, _ := b.Key.Next(i)
		sb.WriteString(k.String())
	}
	return sb.String()
}

// OpenMeldInfo 由副露导出的明刻/明杠牌种, 暗杠不计入
type OpenMeldInfo struct {
	Triplets map[core.Key]bool
	Quads    map[core.Key]bool
}

func newOpenMeldInfo(melds []parsedMeld) *OpenMeldInfo {
	info := &OpenMeldInfo{
		Triplets: make(map[core.Key]bool),
		Quads:    make(map[core.Key]bool),
	}
	for _, m := range melds {
		switch m.Type {
		case MeldPon:
			info.Triplets[m.Tiles[0].Key()] = true
		case MeldMinkan:
			info.Quads[m.Tiles[0].Key()] = true
		}
	}
	return info
}

// meldBlocks 副露转为面子
func meldBlocks(melds []parsedMeld) []Block {
	blocks := make([]Block, 0, len(melds))
	for _, m := range melds {
		b := Block{Key: m.Tiles[0].Key(), Declared: true}
		switch m.Type {
		case MeldChi:
			b.Kind = BlockRun
		case MeldPon:
			b.Kind = BlockTriplet
		default:
			b.Kind = BlockQuad
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// HandPattern 一种候选和了形: 4 个面子 + 雀头
type HandPattern struct {
	Blocks    []Block // 不含雀头, 副露面子在后
	Head      core.Key
	Concealed bool
	Open      *OpenMeldInfo
}

// IsOpenSet 刻子/杠子是否按明刻/明杠处理
func (p *HandPattern) IsOpenSet(b Block) bool {
	switch b.Kind {
	case BlockTriplet:
		return b.RonCompleted || p.Open.Triplets[b.Key]
	case BlockQuad:
		return p.Open.Quads[b.Key]
	default:
		return false
	}
}

// ConcealedSets 暗刻/暗杠数, 荣和完成的刻子不计
func (p *HandPattern) ConcealedSets() int {
	n := 0
	for _, b := range p.Blocks {
		if b.IsSet() && !p.IsOpenSet(b) {
			n++
		}
	}
	return n
}

// Count 满足条件的面子数
func (p *HandPattern) Count(pred func(Block) bool) int {
	n := 0
	for _, b := range p.Blocks {
		if pred(b) {
			n++
		}
	}
	return n
}

// TileCounts 按面子还原的牌种计数
func (p *HandPattern) TileCounts() core.Counts {
	var c core.Counts
	c[p.Head.Index()] += 2
	for _, b := range p.Blocks {
		if b.Kind == BlockRun {
			for i := int8(0); i < 3; i++ {
				k, _ := b.Key.Next(i)
				c[k.Index()]++
			}
			continue
		}
		c[b.Key.Index()] += b.Size()
	}
	return c
}

func isRun(b Block) bool { return b.Kind == BlockRun }
func isSet(b Block) bool { return b.IsSet() }
func isQuad(b Block) bool { return b.Kind == BlockQuad }
