package core

import "sort"

// ParseTile 解析牌代码
// 字牌为单个字母 (E S W N P F C), 数牌为 "<数字><花色>", 花色 m/p/s, 数字 0 表示赤五
func ParseTile(code string) (Tile, error) {
	for h, letter := range honorLetters {
		if code == letter {
			return HonorTile(h), nil
		}
	}

	if len(code) != 2 {
		return Tile{}, ErrInvalidTileCode.With("code", code)
	}

	d := code[0]
	if d < '0' || d > '9' {
		return Tile{}, ErrInvalidTileCode.With("code", code)
	}

	var suit Suit
	switch code[1] {
	case 'm':
		suit = SuitMan
	case 'p':
		suit = SuitPin
	case 's':
		suit = SuitSou
	default:
		return Tile{}, ErrInvalidTileCode.With("code", code)
	}

	if d == '0' {
		return Tile{Suit: suit, Rank: 5, Red: true}, nil
	}
	return SuitedTile(suit, int8(d-'0')), nil
}

// MustParseTile 解析失败时 panic, 仅用于常量和测试
func MustParseTile(code string) Tile {
	t, err := ParseTile(code)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTiles 批量解析牌代码
func ParseTiles(codes []string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(codes))
	for i, code := range codes {
		t, err := ParseTile(code)
		if err != nil {
			if ge, ok := err.(*GameError); ok {
				return nil, ge.With("index", i)
			}
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// SortTiles 按规范顺序排序, 同种牌普通五在赤五之前
func SortTiles(tiles []Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		ki, kj := tiles[i].Key().Index(), tiles[j].Key().Index()
		if ki != kj {
			return ki < kj
		}
		return !tiles[i].Red && tiles[j].Red
	})
}

// CloneTiles 克隆牌组
func CloneTiles(tiles []Tile) []Tile {
	result := make([]Tile, len(tiles))
	copy(result, tiles)
	return result
}

// Codes 牌组转为代码列表
func Codes(tiles []Tile) []string {
	codes := make([]string, len(tiles))
	for i, t := range tiles {
		codes[i] = t.Code()
	}
	return codes
}
