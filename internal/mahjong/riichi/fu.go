package riichi

// 七对子固定符数
const sevenPairsFu = 25

// isPinfuShape 平和形: 全部顺子, 雀头非役牌, 两面听. 计符与平和役共用
func isPinfuShape(c *candidate) bool {
	if !c.standard() || c.wait != WaitRyanmen {
		return false
	}
	if c.ctx.isValueKey(c.pattern.Head) {
		return false
	}
	return c.pattern.Count(isRun) == len(c.pattern.Blocks)
}

// setFu 刻子/杠子的符: 中张明刻 2, 幺九翻倍, 暗刻翻倍, 杠子四倍
func setFu(p *HandPattern, b Block) int {
	fu := 2
	if b.Kind == BlockQuad {
		fu = 8
	}
	if !p.IsOpenSet(b) {
		fu *= 2
	}
	if b.Key.IsTerminalOrHonor() {
		fu *= 2
	}
	return fu
}

// CalculateFu 计算标准形的符数, 结果进位到 10 的倍数
func CalculateFu(c *candidate) int {
	if c.special == SpecialSevenPairs {
		return sevenPairsFu
	}
	if !c.standard() {
		return 0
	}

	ctx, p := c.ctx, c.pattern

	// 门前平和自摸固定 20 符, 不加自摸符
	if p.Concealed && ctx.tsumo() && isPinfuShape(c) {
		return 20
	}

	fu := 20
	if ctx.tsumo() {
		fu += 2
	} else if p.Concealed {
		fu += 10
	}

	if p.Head.IsDragon() {
		fu += 2
	}
	if p.Head.IsWind() {
		if p.Head.Honor == ctx.hand.round {
			fu += 2
		}
		if p.Head.Honor == ctx.hand.seat {
			fu += 2
		}
	}

	for _, b := range p.Blocks {
		if b.IsSet() {
			fu += setFu(p, b)
		}
	}

	switch c.wait {
	case WaitPenchan, WaitKanchan, WaitTanki:
		fu += 2
	}

	// 副露平和形荣和
	if fu == 20 {
		return 30
	}
	return roundUp(fu, 10)
}

func roundUp(v, unit int) int {
	return (v + unit - 1) / unit * unit
}
