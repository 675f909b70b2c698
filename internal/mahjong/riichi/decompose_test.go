package riichi

import (
	"testing"

	"sudooom.mahjong.score/internal/mahjong/core"
)

// restore 按拆分结果还原牌种计数
func restore(d Decomposition) core.Counts {
	p := &HandPattern{Blocks: d.Blocks, Head: d.Head}
	return p.TileCounts()
}

func TestDecompose_AllSplits(t *testing.T) {
	counts := countsOf(t, "2m 2m 2m 3m 3m 3m 4m 4m 4m 5m 5m 5m 6m 6m")
	result := Decompose(counts, 4)

	// 3m 雀头一种, 6m 雀头三种
	if len(result) != 4 {
		t.Fatalf("期望 4 种拆分, 实际 %d: %+v", len(result), result)
	}

	heads := map[core.Key]int{}
	for _, d := range result {
		heads[d.Head]++
	}
	if heads[key("3m")] != 1 || heads[key("6m")] != 3 {
		t.Errorf("雀头分布不符: %v", heads)
	}
}

func TestDecompose_Conservation(t *testing.T) {
	hands := []string{
		"2m 2m 2m 3m 3m 3m 4m 4m 4m 5m 5m 5m 6m 6m",
		"1m 1m 1m 2m 3m 4m 5m 5m 6m 7m 8m 9m 9m 9m",
		"2m 2m 3m 3m 4m 4m 6p 6p 7p 7p 8p 8p 5s 5s",
		"1p 1p 1p 2p 2p 2p 3p 3p 3p 4p 4p 4p 5p 5p",
	}
	for _, h := range hands {
		counts := countsOf(t, h)
		result := Decompose(counts, 4)
		if len(result) == 0 {
			t.Errorf("%s: 期望至少一种拆分", h)
		}
		for _, d := range result {
			if len(d.Blocks) != 4 {
				t.Errorf("%s: 期望 4 个面子, 实际 %d", h, len(d.Blocks))
			}
			if got := restore(d); got != counts {
				t.Errorf("%s: 拆分 %+v 与原牌数量不一致", h, d)
			}
		}
	}
}

func TestDecompose_HonorsNeverRun(t *testing.T) {
	counts := countsOf(t, "E S W E S W E S W N N P P P")
	for _, d := range Decompose(counts, 4) {
		for _, b := range d.Blocks {
			if b.Kind == BlockRun {
				t.Fatalf("字牌不能组成顺子: %+v", d)
			}
		}
	}
}

func TestDecompose_PairOnly(t *testing.T) {
	counts := countsOf(t, "4p 4p")
	result := Decompose(counts, 0)
	if len(result) != 1 {
		t.Fatalf("期望 1 种拆分, 实际 %d", len(result))
	}
	if result[0].Head != key("4p") || len(result[0].Blocks) != 0 {
		t.Errorf("拆分不符: %+v", result[0])
	}
}

func TestDecompose_Impossible(t *testing.T) {
	counts := countsOf(t, "1m 1m 2m 3m 4m 5m 6m 7m 8m 9m 1p 1p 1p 1p")
	if result := Decompose(counts, 4); len(result) != 0 {
		t.Errorf("期望无法拆分, 实际 %+v", result)
	}
	if result := Decompose(counts, -1); result != nil {
		t.Error("负数面子数应返回 nil")
	}
}
