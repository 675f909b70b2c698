package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// yakuman 构造役满, 倍数为 0 时不成立
func yakuman(name string, times int) []Yaku {
	return []Yaku{{Name: name, Yakuman: times}}
}

// doubled 双倍役满规则关闭时按单倍计
func doubled(c *candidate) int {
	if c.ctx.rules.DoubleYakuman {
		return 2
	}
	return 1
}

// tileYakumanRules 只看牌种的役满, 标准形与七对子通用
var tileYakumanRules = []yakuRule{
	tsuuiisouRule,
	chinroutouRule,
	ryuuiisouRule,
}

// shapeYakumanRules 依赖面子拆分的役满
var shapeYakumanRules = []yakuRule{
	daisangenRule,
	suushiiRule,
	suukantsuRule,
	suuankouRule,
	chuurenRule,
}

// EvaluateYakuman 评估役满, 多个役满倍数相加
func EvaluateYakuman(c *candidate) []Yaku {
	switch c.special {
	case SpecialOrphans:
		return yakuman("Kokushi Musou", 1)
	case SpecialOrphans13:
		return yakuman("Kokushi Musou 13-wait", doubled(c))
	}

	rules := [][]yakuRule{tileYakumanRules}
	if c.standard() {
		rules = append(rules, shapeYakumanRules)
	}

	var yaku []Yaku
	for _, group := range rules {
		for _, rule := range group {
			yaku = append(yaku, rule(c)...)
		}
	}
	return yaku
}

func tsuuiisouRule(c *candidate) []Yaku {
	if c.ctx.all.All(core.Key.IsHonor) {
		return yakuman("Tsuuiisou", 1)
	}
	return nil
}

func chinroutouRule(c *candidate) []Yaku {
	if c.ctx.all.All(core.Key.IsTerminal) {
		return yakuman("Chinroutou", 1)
	}
	return nil
}

// isGreen 绿一色可用牌: 23468 索与发
func isGreen(k core.Key) bool {
	if k.IsHonor() {
		return k.Honor == core.HonorGreen
	}
	if k.Suit != core.SuitSou {
		return false
	}
	switch k.Rank {
	case 2, 3, 4, 6, 8:
		return true
	default:
		return false
	}
}

func ryuuiisouRule(c *candidate) []Yaku {
	if c.ctx.all.All(isGreen) {
		return yakuman("Ryuuiisou", 1)
	}
	return nil
}

func daisangenRule(c *candidate) []Yaku {
	if dragonSets(c.pattern) == 3 {
		return yakuman("Daisangen", 1)
	}
	return nil
}

// suushiiRule 大四喜/小四喜
func suushiiRule(c *candidate) []Yaku {
	switch n := windSets(c.pattern); {
	case n == 4:
		return yakuman("Daisuushii", 1)
	case n == 3 && c.pattern.Head.IsWind():
		return yakuman("Shousuushii", 1)
	default:
		return nil
	}
}

func suukantsuRule(c *candidate) []Yaku {
	if c.pattern.Count(isQuad) == 4 {
		return yakuman("Suukantsu", 1)
	}
	return nil
}

// suuankouRule 四暗刻, 单骑听为双倍. 荣和完成的双碰刻子不算暗刻
func suuankouRule(c *candidate) []Yaku {
	if c.pattern.ConcealedSets() < 4 {
		return nil
	}
	if c.wait == WaitTanki {
		return yakuman("Suuankou Tanki", doubled(c))
	}
	return yakuman("Suuankou", 1)
}

// chuurenRule 九莲宝灯: 门前无副露, 同一花色 1112345678999 + 任意一张
// 去掉和了牌后恰为 1112345678999 时为纯正九莲
func chuurenRule(c *candidate) []Yaku {
	ctx := c.ctx
	if ctx.hasMelds || !singleSuit(&ctx.inHand) || ctx.inHand.Any(core.Key.IsHonor) {
		return nil
	}

	suit := ctx.win.Suit
	base := [10]int{0, 3, 1, 1, 1, 1, 1, 1, 1, 3}
	pure := true
	for rank := int8(1); rank <= 9; rank++ {
		n := ctx.inHand.Of(core.Key{Suit: suit, Rank: rank})
		if n < base[rank] {
			return nil
		}
		if rank == ctx.win.Rank {
			n--
		}
		if n != base[rank] {
			pure = false
		}
	}

	if pure {
		return yakuman("Junsei Chuuren Poutou", doubled(c))
	}
	return yakuman("Chuuren Poutou", 1)
}
