package core

// KeyCount 牌种总数: 万筒索各 9 种 + 字牌 7 种
const KeyCount = 34

// Key 牌种 (忽略赤标记), 分解/待牌/役判定一律使用 Key 比较
type Key struct {
	Suit  Suit
	Rank  int8
	Honor Honor
}

// Index 规范序号: 先花色, 再字牌顺序, 最后数字. 0-8 万, 9-17 筒, 18-26 索, 27-33 东南西北白发中
func (k Key) Index() int {
	if k.Suit == SuitHonor {
		return 27 + int(k.Honor-HonorEast)
	}
	return int(k.Suit)*9 + int(k.Rank-1)
}

// KeyAt 由规范序号还原牌种
func KeyAt(idx int) Key {
	if idx >= 27 {
		return Key{Suit: SuitHonor, Honor: HonorEast + Honor(idx-27)}
	}
	return Key{Suit: Suit(idx / 9), Rank: int8(idx%9 + 1)}
}

// Less 规范顺序比较
func (k Key) Less(other Key) bool {
	return k.Index() < other.Index()
}

// Tile 转为非赤的牌
func (k Key) Tile() Tile {
	return Tile{Suit: k.Suit, Rank: k.Rank, Honor: k.Honor}
}

// String 返回牌代码
func (k Key) String() string {
	return k.Tile().Code()
}

// IsHonor 是否字牌
func (k Key) IsHonor() bool {
	return k.Suit == SuitHonor
}

// IsTerminal 是否老头牌 (数牌 1/9)
func (k Key) IsTerminal() bool {
	return k.Suit != SuitHonor && (k.Rank == 1 || k.Rank == 9)
}

// IsTerminalOrHonor 是否幺九牌
func (k Key) IsTerminalOrHonor() bool {
	return k.IsHonor() || k.IsTerminal()
}

// IsSimple 是否中张牌 (数牌 2-8)
func (k Key) IsSimple() bool {
	return !k.IsTerminalOrHonor()
}

// IsDragon 是否三元牌
func (k Key) IsDragon() bool {
	return k.IsHonor() && k.Honor.IsDragon()
}

// IsWind 是否风牌
func (k Key) IsWind() bool {
	return k.IsHonor() && k.Honor.IsWind()
}

// Next 同花色后第 n 张, 字牌或越界返回 false
func (k Key) Next(n int8) (Key, bool) {
	if k.Suit == SuitHonor || k.Rank+n > 9 {
		return Key{}, false
	}
	return Key{Suit: k.Suit, Rank: k.Rank + n}, true
}

// OrphanKeys 国士无双的 13 种幺九牌
func OrphanKeys() []Key {
	keys := make([]Key, 0, 13)
	for _, s := range []Suit{SuitMan, SuitPin, SuitSou} {
		keys = append(keys, Key{Suit: s, Rank: 1}, Key{Suit: s, Rank: 9})
	}
	for h := HonorEast; h <= HonorRed; h++ {
		keys = append(keys, Key{Suit: SuitHonor, Honor: h})
	}
	return keys
}

// Counts 按规范序号计数的牌种多重集
type Counts [KeyCount]int

// CountTiles 统计牌种数量
func CountTiles(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		c[t.Key().Index()]++
	}
	return c
}

// Of 取某牌种数量
func (c *Counts) Of(k Key) int {
	return c[k.Index()]
}

// Total 牌的总数
func (c *Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Distinct 出现的牌种数
func (c *Counts) Distinct() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// All 所有出现的牌种都满足 pred
func (c *Counts) All(pred func(Key) bool) bool {
	for i, v := range c {
		if v > 0 && !pred(KeyAt(i)) {
			return false
		}
	}
	return true
}

// Any 存在出现的牌种满足 pred
func (c *Counts) Any(pred func(Key) bool) bool {
	for i, v := range c {
		if v > 0 && pred(KeyAt(i)) {
			return true
		}
	}
	return false
}
