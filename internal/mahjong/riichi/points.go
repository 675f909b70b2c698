package riichi

import "fmt"

// 满贯及以上的基本点
const (
	baseMangan    = 2000
	baseHaneman   = 3000
	baseBaiman    = 4000
	baseSanbaiman = 6000
	baseKazoe     = 8000
)

// PointsInput 点数计算的输入
type PointsInput struct {
	Fu      int
	Han     int
	Yakuman int
	WinType WinType
	Dealer  bool
	Honba   int
	Kyotaku int
}

// Payment 和了收入及各家支付明细 (本场已计入各家支付, 供托只计入合计)
type Payment struct {
	Total         int    `json:"total" yaml:"total"`
	FromDiscarder int    `json:"from_discarder,omitempty" yaml:"from_discarder,omitempty"`   // 荣和: 放铳者
	FromDealer    int    `json:"from_dealer,omitempty" yaml:"from_dealer,omitempty"`         // 闲家自摸: 庄家
	FromNonDealer int    `json:"from_non_dealer,omitempty" yaml:"from_non_dealer,omitempty"` // 自摸: 每个闲家
	Limit         string `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// CalculatePoints 由符/番或役满倍数计算支付
func CalculatePoints(in PointsInput) Payment {
	var (
		p          Payment
		ron        int // 荣和总额
		dealerPart int // 自摸时庄家支付
		otherPart  int // 自摸时每个闲家支付
	)

	if in.Yakuman > 0 {
		p.Limit = "Yakuman"
		if in.Yakuman > 1 {
			p.Limit = fmt.Sprintf("Yakuman x%d", in.Yakuman)
		}
		if in.Dealer {
			ron = 48000 * in.Yakuman
			otherPart = 16000 * in.Yakuman
		} else {
			ron = 32000 * in.Yakuman
			dealerPart = 16000 * in.Yakuman
			otherPart = 8000 * in.Yakuman
		}
	} else {
		var base int
		base, p.Limit = basePoints(in.Fu, in.Han)
		if in.Dealer {
			ron = roundUp(base*6, 100)
			otherPart = roundUp(base*2, 100)
		} else {
			ron = roundUp(base*4, 100)
			dealerPart = roundUp(base*2, 100)
			otherPart = roundUp(base, 100)
		}
	}

	if in.WinType == WinRon {
		p.FromDiscarder = ron + 300*in.Honba
		p.Total = p.FromDiscarder
	} else {
		p.FromNonDealer = otherPart + 100*in.Honba
		if in.Dealer {
			p.Total = p.FromNonDealer * 3
		} else {
			p.FromDealer = dealerPart + 100*in.Honba
			p.Total = p.FromDealer + p.FromNonDealer*2
		}
	}

	p.Total += 1000 * in.Kyotaku
	return p
}

// basePoints 基本点 fu*2^(han+2), 满贯以上按固定值
func basePoints(fu, han int) (int, string) {
	switch {
	case han >= 13:
		return baseKazoe, "Kazoe Yakuman"
	case han >= 11:
		return baseSanbaiman, "Sanbaiman"
	case han >= 8:
		return baseBaiman, "Baiman"
	case han >= 6:
		return baseHaneman, "Haneman"
	case han == 5, han == 4 && fu >= 40, han == 3 && fu >= 70:
		return baseMangan, "Mangan"
	}
	return fu << (han + 2), ""
}
