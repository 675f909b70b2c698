package core

// Suit 牌的花色
type Suit int8

const (
	SuitMan   Suit = iota // 万子
	SuitPin               // 筒子
	SuitSou               // 索子
	SuitHonor             // 字牌
)

// String 返回花色的字符串表示
func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "man"
	case SuitPin:
		return "pin"
	case SuitSou:
		return "sou"
	case SuitHonor:
		return "honor"
	default:
		return "unknown"
	}
}

// letter 返回数牌代码中的花色字母
func (s Suit) letter() byte {
	switch s {
	case SuitMan:
		return 'm'
	case SuitPin:
		return 'p'
	case SuitSou:
		return 's'
	default:
		return '?'
	}
}

// Honor 字牌种类, 数牌为 HonorNone
type Honor int8

const (
	HonorNone  Honor = iota
	HonorEast        // 东
	HonorSouth       // 南
	HonorWest        // 西
	HonorNorth       // 北
	HonorWhite       // 白
	HonorGreen       // 发
	HonorRed         // 中
)

// String 返回字牌名称
func (h Honor) String() string {
	switch h {
	case HonorEast:
		return "East"
	case HonorSouth:
		return "South"
	case HonorWest:
		return "West"
	case HonorNorth:
		return "North"
	case HonorWhite:
		return "White"
	case HonorGreen:
		return "Green"
	case HonorRed:
		return "Red"
	default:
		return ""
	}
}

// IsWind 是否风牌
func (h Honor) IsWind() bool {
	return h >= HonorEast && h <= HonorNorth
}

// IsDragon 是否三元牌
func (h Honor) IsDragon() bool {
	return h >= HonorWhite && h <= HonorRed
}

// honorLetters 字牌代码: 东南西北 E S W N, 白 P, 发 F, 中 C
var honorLetters = map[Honor]string{
	HonorEast:  "E",
	HonorSouth: "S",
	HonorWest:  "W",
	HonorNorth: "N",
	HonorWhite: "P",
	HonorGreen: "F",
	HonorRed:   "C",
}

// Tile 一张牌. Red 标记赤五, 除宝牌计数外与普通五完全相同
type Tile struct {
	Suit  Suit  `json:"suit"`
	Rank  int8  `json:"rank"`  // 1-9, 字牌为 0
	Honor Honor `json:"honor"` // 仅字牌有效
	Red   bool  `json:"red"`
}

// HonorTile 构造字牌
func HonorTile(h Honor) Tile {
	return Tile{Suit: SuitHonor, Honor: h}
}

// SuitedTile 构造数牌
func SuitedTile(s Suit, rank int8) Tile {
	return Tile{Suit: s, Rank: rank}
}

// IsHonor 是否字牌
func (t Tile) IsHonor() bool {
	return t.Suit == SuitHonor
}

// IsAka 是否赤五
func (t Tile) IsAka() bool {
	return t.Red && t.Suit != SuitHonor && t.Rank == 5
}

// Key 去掉赤标记后的牌种
func (t Tile) Key() Key {
	return Key{Suit: t.Suit, Rank: t.Rank, Honor: t.Honor}
}

// Code 编码为牌代码, 赤五统一编码为 0m/0p/0s
func (t Tile) Code() string {
	if t.Suit == SuitHonor {
		return honorLetters[t.Honor]
	}
	digit := byte('0' + t.Rank)
	if t.Red {
		digit = '0'
	}
	return string([]byte{digit, t.Suit.letter()})
}

// String 返回牌代码
func (t Tile) String() string {
	return t.Code()
}
