package riichi

import (
	"fmt"
	"log/slog"

	"sudooom.mahjong.score/internal/mahjong/core"
)

// maxGroups 一手牌的面子数
const maxGroups = 4

// Scorer 立直麻将计分器. 无共享可变状态, 可并发调用
type Scorer struct {
	rules  Rules
	logger *slog.Logger
}

// NewScorer 创建计分器
func NewScorer(rules Rules) *Scorer {
	return &Scorer{
		rules:  rules,
		logger: slog.Default().With("component", "riichi-scorer"),
	}
}

// Rules 返回当前规则
func (s *Scorer) Rules() Rules {
	return s.rules
}

// Score 计算一手牌的最高得点解释
// 牌代码或枚举非法时返回 error; 无法拆分/无役以 ScoreResult.Outcome 区分
func (s *Scorer) Score(req *ScoreRequest) (*ScoreResult, error) {
	hand, err := parseRequest(req)
	if err != nil {
		return nil, err
	}

	if len(hand.melds) > maxGroups {
		return failedResult(OutcomeStructuralError,
			fmt.Sprintf("副露过多: %d 组超过 %d 组", len(hand.melds), maxGroups)), nil
	}

	ctx := newEvalContext(hand, req.WinType, s.rules)
	candidates := s.candidates(ctx)
	if len(candidates) == 0 {
		return failedResult(OutcomeStructuralError,
			fmt.Sprintf("无法拆分: 门内 %v, 需要 %d 组面子", core.Codes(hand.concealed), maxGroups-len(hand.melds))), nil
	}

	var best *ScoreResult
	for _, c := range candidates {
		r := s.evaluate(c, req)
		if r == nil {
			continue
		}
		if best == nil || r.TotalPoints > best.TotalPoints {
			best = r
		}
	}

	if best == nil {
		s.logger.Debug("无役", "candidates", len(candidates))
		return failedResult(OutcomeNoYaku, "没有可成立的役"), nil
	}

	s.logger.Debug("计分完成",
		"candidates", len(candidates),
		"total_points", best.TotalPoints,
		"han", best.Han,
		"fu", best.Fu,
		"yakuman", best.Yakuman)
	return best, nil
}

// candidates 特殊形在前, 然后是所有标准拆分
func (s *Scorer) candidates(ctx *evalContext) []*candidate {
	var result []*candidate

	if sp := DetectSpecial(ctx.inHand, ctx.win, ctx.hasMelds); sp != SpecialNone {
		c := &candidate{ctx: ctx, special: sp}
		if sp == SpecialSevenPairs {
			c.wait = WaitTanki
		}
		result = append(result, c)
	}

	for _, d := range Decompose(ctx.inHand, maxGroups-len(ctx.melds)) {
		wait, ron := ClassifyWait(d, ctx.win, ctx.winType)
		if wait == WaitNone {
			continue
		}
		result = append(result, &candidate{
			ctx:     ctx,
			pattern: ctx.pattern(d, ron),
			wait:    wait,
		})
	}
	return result
}

// evaluate 评估单个候选, 无役返回 nil
func (s *Scorer) evaluate(c *candidate, req *ScoreRequest) *ScoreResult {
	r := &ScoreResult{Outcome: OutcomeWin, Wait: c.wait.String()}

	if ym := EvaluateYakuman(c); len(ym) > 0 {
		for _, y := range ym {
			r.Yakuman += y.Yakuman
			r.Yaku = append(r.Yaku, y.Name)
		}
		if c.standard() {
			r.Fu = CalculateFu(c)
		}
	} else {
		yaku := EvaluateYaku(c)
		if len(yaku) == 0 {
			return nil
		}
		for _, y := range yaku {
			r.Han += y.Han
			r.Yaku = append(r.Yaku, y.Name)
		}
		r.Fu = CalculateFu(c)
		s.addDora(r, c.ctx.hand)
	}

	r.Payment = CalculatePoints(PointsInput{
		Fu:      r.Fu,
		Han:     r.Han,
		Yakuman: r.Yakuman,
		WinType: req.WinType,
		Dealer:  req.Dealer,
		Honba:   req.Honba,
		Kyotaku: req.Kyotaku,
	})
	r.TotalPoints = r.Payment.Total
	r.Limit = r.Payment.Limit
	return r
}

// addDora 宝牌/里宝牌/赤宝牌加番, 里宝牌只在立直时计算
func (s *Scorer) addDora(r *ScoreResult, h *parsedHand) {
	r.DoraHan = core.CountDora(h.all, h.dora) + core.CountDora(h.all, h.kanDora)
	if h.riichi != RiichiNone {
		r.UraDoraHan = core.CountDora(h.all, h.ura) + core.CountDora(h.all, h.kanUra)
	}
	r.AkaDoraHan = core.CountAka(h.all)

	r.Han += r.DoraHan + r.UraDoraHan + r.AkaDoraHan
	if r.DoraHan > 0 {
		r.Yaku = append(r.Yaku, fmt.Sprintf("Dora %d", r.DoraHan))
	}
	if r.UraDoraHan > 0 {
		r.Yaku = append(r.Yaku, fmt.Sprintf("Ura Dora %d", r.UraDoraHan))
	}
	if r.AkaDoraHan > 0 {
		r.Yaku = append(r.Yaku, fmt.Sprintf("Aka Dora %d", r.AkaDoraHan))
	}
}
