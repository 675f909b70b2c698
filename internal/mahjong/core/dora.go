package core

// IndicatorToDora 宝牌指示牌 -> 宝牌
// 数牌 9 之后回到 1, 风牌 东南西北 循环, 三元牌 白发中 循环
func IndicatorToDora(ind Tile) Key {
	if ind.IsHonor() {
		var next Honor
		switch ind.Honor {
		case HonorNorth:
			next = HonorEast
		case HonorRed:
			next = HonorWhite
		default:
			next = ind.Honor + 1
		}
		return Key{Suit: SuitHonor, Honor: next}
	}

	rank := ind.Rank + 1
	if rank > 9 {
		rank = 1
	}
	return Key{Suit: ind.Suit, Rank: rank}
}

// CountDora 统计宝牌数, 每个指示牌单独计数 (重复指示牌重复计算)
func CountDora(tiles []Tile, indicators []Tile) int {
	if len(indicators) == 0 {
		return 0
	}
	counts := CountTiles(tiles)
	n := 0
	for _, ind := range indicators {
		n += counts.Of(IndicatorToDora(ind))
	}
	return n
}

// CountAka 统计赤五数
func CountAka(tiles []Tile) int {
	n := 0
	for _, t := range tiles {
		if t.IsAka() {
			n++
		}
	}
	return n
}
