package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// Rules 规则开关
type Rules struct {
	OpenTanyao    bool // 食断
	DoubleYakuman bool // 国士十三面/四暗刻单骑/纯正九莲按双倍役满
}

// DefaultRules 默认规则
func DefaultRules() Rules {
	return Rules{
		OpenTanyao:    true,
		DoubleYakuman: true,
	}
}

// evalContext 单次计分共享的只读数据, 所有候选共用
type evalContext struct {
	hand      *parsedHand
	rules     Rules
	winType   WinType
	win       core.Key
	concealed bool
	hasMelds  bool
	open      *OpenMeldInfo
	melds     []Block

	all    core.Counts // 含副露的全部牌
	inHand core.Counts // 门内 14 张 (副露之外)
}

func newEvalContext(h *parsedHand, winType WinType, rules Rules) *evalContext {
	return &evalContext{
		hand:      h,
		rules:     rules,
		winType:   winType,
		win:       h.win.Key(),
		concealed: h.concealedStrict(),
		hasMelds:  len(h.melds) > 0,
		open:      newOpenMeldInfo(h.melds),
		melds:     meldBlocks(h.melds),
		all:       core.CountTiles(h.all),
		inHand:    core.CountTiles(h.concealed),
	}
}

func (ctx *evalContext) tsumo() bool {
	return ctx.winType == WinTsumo
}

// isValueKey 役牌: 三元牌, 场风, 自风
func (ctx *evalContext) isValueKey(k core.Key) bool {
	if !k.IsHonor() {
		return false
	}
	return k.IsDragon() || k.Honor == ctx.hand.round || k.Honor == ctx.hand.seat
}

// pattern 由门内拆分和副露组装候选和了形
func (ctx *evalContext) pattern(d Decomposition, ronTriplet int) *HandPattern {
	blocks := make([]Block, 0, len(d.Blocks)+len(ctx.melds))
	blocks = append(blocks, d.Blocks...)
	if ronTriplet >= 0 {
		blocks[ronTriplet].RonCompleted = true
	}
	blocks = append(blocks, ctx.melds...)
	return &HandPattern{
		Blocks:    blocks,
		Head:      d.Head,
		Concealed: ctx.concealed,
		Open:      ctx.open,
	}
}

// candidate 一个待评估的候选: 标准形或特殊形
type candidate struct {
	ctx     *evalContext
	special SpecialHand
	pattern *HandPattern // 特殊形为 nil
	wait    WaitType
}

func (c *candidate) standard() bool {
	return c.pattern != nil
}
