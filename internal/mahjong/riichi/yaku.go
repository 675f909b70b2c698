package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// Yaku 一个役. Yakuman > 0 时为役满倍数, Han 不计
type Yaku struct {
	Name    string `json:"name"`
	Han     int    `json:"han"`
	Yakuman int    `json:"yakuman,omitempty"`
}

// yakuRule 单个役的判定, 不成立返回 nil
type yakuRule func(c *candidate) []Yaku

func one(name string, han int) []Yaku {
	return []Yaku{{Name: name, Han: han}}
}

// byConcealed 门前/副露 (食下) 的番数
func byConcealed(c *candidate, closed, open int) int {
	if c.ctx.concealed {
		return closed
	}
	return open
}

// situationalRules 场况役, 标准形与七对子通用
var situationalRules = []yakuRule{
	riichiRule,
	flagRule(func(f Flags) bool { return f.Ippatsu }, "Ippatsu"),
	flagRule(func(f Flags) bool { return f.Rinshan }, "Rinshan Kaihou"),
	flagRule(func(f Flags) bool { return f.Chankan }, "Chankan"),
	flagRule(func(f Flags) bool { return f.Haitei }, "Haitei Raoyue"),
	flagRule(func(f Flags) bool { return f.Houtei }, "Houtei Raoyui"),
	menzenTsumoRule,
}

// tileRules 只看牌种构成的役, 标准形与七对子通用
var tileRules = []yakuRule{
	tanyaoRule,
	flushRule,
	honroutouRule,
}

// shapeRules 依赖面子拆分的役, 仅标准形
var shapeRules = []yakuRule{
	yakuhaiRule,
	toitoiRule,
	sanankouRule,
	ittsuRule,
	sanshokuDoujunRule,
	chantaRule,
	sanshokuDoukouRule,
	shousangenRule,
	sankantsuRule,
	pinfuRule,
	peikouRule,
}

// EvaluateYaku 按固定顺序评估一个候选的全部一般役
func EvaluateYaku(c *candidate) []Yaku {
	var rules [][]yakuRule
	switch {
	case c.standard():
		rules = [][]yakuRule{situationalRules, tileRules, shapeRules}
	case c.special == SpecialSevenPairs:
		rules = [][]yakuRule{situationalRules, {sevenPairsRule}, tileRules}
	default:
		return nil
	}

	var yaku []Yaku
	for _, group := range rules {
		for _, rule := range group {
			yaku = append(yaku, rule(c)...)
		}
	}
	return yaku
}

// ===== 场况役 =====

func riichiRule(c *candidate) []Yaku {
	switch c.ctx.hand.riichi {
	case RiichiDouble:
		return one("Double Riichi", 2)
	case RiichiSingle:
		return one("Riichi", 1)
	default:
		return nil
	}
}

func flagRule(flag func(Flags) bool, name string) yakuRule {
	return func(c *candidate) []Yaku {
		if flag(c.ctx.hand.flags) {
			return one(name, 1)
		}
		return nil
	}
}

func menzenTsumoRule(c *candidate) []Yaku {
	if c.ctx.concealed && c.ctx.tsumo() {
		return one("Menzen Tsumo", 1)
	}
	return nil
}

// ===== 牌种构成 =====

func tanyaoRule(c *candidate) []Yaku {
	if !c.ctx.concealed && !c.ctx.rules.OpenTanyao {
		return nil
	}
	if c.ctx.all.All(core.Key.IsSimple) {
		return one("Tanyao", 1)
	}
	return nil
}

// flushRule 混一色/清一色
func flushRule(c *candidate) []Yaku {
	all := &c.ctx.all
	if !singleSuit(all) {
		return nil
	}
	if all.Any(core.Key.IsHonor) {
		return one("Honitsu", byConcealed(c, 3, 2))
	}
	return one("Chinitsu", byConcealed(c, 6, 5))
}

// singleSuit 数牌只有一种花色 (至少一张数牌)
func singleSuit(c *core.Counts) bool {
	suit := core.SuitHonor
	for i, v := range c {
		if v == 0 || i >= 27 {
			continue
		}
		k := core.KeyAt(i)
		if suit != core.SuitHonor && suit != k.Suit {
			return false
		}
		suit = k.Suit
	}
	return suit != core.SuitHonor
}

// honroutouRule 混老头: 全部幺九且字牌数牌都有 (全字/全老头为役满)
func honroutouRule(c *candidate) []Yaku {
	all := &c.ctx.all
	if !all.All(core.Key.IsTerminalOrHonor) {
		return nil
	}
	if all.Any(core.Key.IsHonor) && all.Any(core.Key.IsTerminal) {
		return one("Honroutou", 2)
	}
	return nil
}

func sevenPairsRule(c *candidate) []Yaku {
	return one("Chiitoitsu", 2)
}

// ===== 面子构成 =====

var dragonYakuhai = map[core.Honor]string{
	core.HonorWhite: "Yakuhai Haku",
	core.HonorGreen: "Yakuhai Hatsu",
	core.HonorRed:   "Yakuhai Chun",
}

// yakuhaiRule 役牌刻子, 连风牌场风自风各计一番
func yakuhaiRule(c *candidate) []Yaku {
	var yaku []Yaku
	for _, b := range c.pattern.Blocks {
		if !b.IsSet() || !b.Key.IsHonor() {
			continue
		}
		if name, ok := dragonYakuhai[b.Key.Honor]; ok {
			yaku = append(yaku, Yaku{Name: name, Han: 1})
			continue
		}
		if b.Key.Honor == c.ctx.hand.round {
			yaku = append(yaku, Yaku{Name: "Round Wind " + b.Key.Honor.String(), Han: 1})
		}
		if b.Key.Honor == c.ctx.hand.seat {
			yaku = append(yaku, Yaku{Name: "Seat Wind " + b.Key.Honor.String(), Han: 1})
		}
	}
	return yaku
}

func toitoiRule(c *candidate) []Yaku {
	if c.pattern.Count(isSet) == len(c.pattern.Blocks) {
		return one("Toitoi", 2)
	}
	return nil
}

func sanankouRule(c *candidate) []Yaku {
	if c.pattern.ConcealedSets() >= 3 {
		return one("Sanankou", 2)
	}
	return nil
}

// runStarts 每个花色中顺子起点的集合
func runStarts(p *HandPattern) map[core.Suit]map[int8]int {
	starts := make(map[core.Suit]map[int8]int)
	for _, b := range p.Blocks {
		if b.Kind != BlockRun {
			continue
		}
		if starts[b.Key.Suit] == nil {
			starts[b.Key.Suit] = make(map[int8]int)
		}
		starts[b.Key.Suit][b.Key.Rank]++
	}
	return starts
}

var numberSuits = []core.Suit{core.SuitMan, core.SuitPin, core.SuitSou}

func ittsuRule(c *candidate) []Yaku {
	for _, ranks := range runStarts(c.pattern) {
		if ranks[1] > 0 && ranks[4] > 0 && ranks[7] > 0 {
			return one("Ittsu", byConcealed(c, 2, 1))
		}
	}
	return nil
}

func sanshokuDoujunRule(c *candidate) []Yaku {
	starts := runStarts(c.pattern)
	for rank := int8(1); rank <= 7; rank++ {
		if inAllSuits(rank, func(s core.Suit, r int8) bool { return starts[s][r] > 0 }) {
			return one("Sanshoku Doujun", byConcealed(c, 2, 1))
		}
	}
	return nil
}

func inAllSuits(rank int8, has func(core.Suit, int8) bool) bool {
	for _, s := range numberSuits {
		if !has(s, rank) {
			return false
		}
	}
	return true
}

// chantaRule 混全带幺九/纯全带幺九: 每个面子和雀头都带幺九, 顺子只能是 123/789.
// 全刻子形同样成立, 与混老头/对对和叠加
func chantaRule(c *candidate) []Yaku {
	p := c.pattern
	if !p.Head.IsTerminalOrHonor() {
		return nil
	}
	for _, b := range p.Blocks {
		if !b.HasTerminalOrHonor() {
			return nil
		}
	}
	honors := p.Head.IsHonor() || p.Count(func(b Block) bool { return b.Key.IsHonor() }) > 0
	if honors {
		return one("Chanta", byConcealed(c, 2, 1))
	}
	return one("Junchan", byConcealed(c, 3, 2))
}

func sanshokuDoukouRule(c *candidate) []Yaku {
	has := func(s core.Suit, r int8) bool {
		k := core.Key{Suit: s, Rank: r}
		return c.pattern.Count(func(b Block) bool { return b.IsSet() && b.Key == k }) > 0
	}
	for rank := int8(1); rank <= 9; rank++ {
		if inAllSuits(rank, has) {
			return one("Sanshoku Doukou", 2)
		}
	}
	return nil
}

func dragonSets(p *HandPattern) int {
	return p.Count(func(b Block) bool { return b.IsSet() && b.Key.IsDragon() })
}

func windSets(p *HandPattern) int {
	return p.Count(func(b Block) bool { return b.IsSet() && b.Key.IsWind() })
}

func shousangenRule(c *candidate) []Yaku {
	if dragonSets(c.pattern) == 2 && c.pattern.Head.IsDragon() {
		return one("Shousangen", 2)
	}
	return nil
}

func sankantsuRule(c *candidate) []Yaku {
	if c.pattern.Count(isQuad) == 3 {
		return one("Sankantsu", 2)
	}
	return nil
}

func pinfuRule(c *candidate) []Yaku {
	if c.ctx.concealed && isPinfuShape(c) {
		return one("Pinfu", 1)
	}
	return nil
}

// peikouRule 一杯口/二杯口, 仅门前. 按重复的 (花色, 起点) 种类数计,
// 四个相同顺子只算一杯口
func peikouRule(c *candidate) []Yaku {
	if !c.ctx.concealed {
		return nil
	}
	pairs := 0
	for _, ranks := range runStarts(c.pattern) {
		for _, n := range ranks {
			if n >= 2 {
				pairs++
			}
		}
	}
	switch {
	case pairs >= 2:
		return one("Ryanpeikou", 3)
	case pairs == 1:
		return one("Iipeikou", 1)
	default:
		return nil
	}
}
