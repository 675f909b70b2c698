package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// Wind 场风/自风
type Wind string

const (
	WindEast  Wind = "E"
	WindSouth Wind = "S"
	WindWest  Wind = "W"
	WindNorth Wind = "N"
)

// Honor 转为对应的字牌
func (w Wind) Honor() (core.Honor, bool) {
	switch w {
	case WindEast:
		return core.HonorEast, true
	case WindSouth:
		return core.HonorSouth, true
	case WindWest:
		return core.HonorWest, true
	case WindNorth:
		return core.HonorNorth, true
	default:
		return core.HonorNone, false
	}
}

// WinType 和了方式
type WinType string

const (
	WinRon   WinType = "RON"   // 荣和
	WinTsumo WinType = "TSUMO" // 自摸
)

// RiichiKind 立直状态
type RiichiKind string

const (
	RiichiNone   RiichiKind = "NONE"
	RiichiSingle RiichiKind = "RIICHI"
	RiichiDouble RiichiKind = "DOUBLE"
)

// MeldType 副露类型
type MeldType string

const (
	MeldChi    MeldType = "CHI"    // 吃
	MeldPon    MeldType = "PON"    // 碰
	MeldMinkan MeldType = "MINKAN" // 明杠
	MeldAnkan  MeldType = "ANKAN"  // 暗杠
)

// Meld 已宣言的副露
type Meld struct {
	Type  MeldType `json:"type" yaml:"type"`
	Tiles []string `json:"tiles" yaml:"tiles"`
}

// Flags 场况标记
type Flags struct {
	Riichi  RiichiKind `json:"riichi" yaml:"riichi"`
	Ippatsu bool       `json:"ippatsu" yaml:"ippatsu"`
	Rinshan bool       `json:"rinshan" yaml:"rinshan"`
	Chankan bool       `json:"chankan" yaml:"chankan"`
	Haitei  bool       `json:"haitei" yaml:"haitei"`
	Houtei  bool       `json:"houtei" yaml:"houtei"`
	Tenhou  bool       `json:"tenhou" yaml:"tenhou"` // 仅透传, 不计役
	Chihou  bool       `json:"chihou" yaml:"chihou"` // 仅透传, 不计役
}

// ScoreRequest 计分请求, 构造后只读
type ScoreRequest struct {
	RoundWind Wind    `json:"round_wind" yaml:"round_wind"`
	SeatWind  Wind    `json:"seat_wind" yaml:"seat_wind"`
	Kyotaku   int     `json:"kyotaku" yaml:"kyotaku"` // 供托棒数
	Honba     int     `json:"honba" yaml:"honba"`     // 本场数
	WinType   WinType `json:"win_type" yaml:"win_type"`
	Dealer    bool    `json:"dealer" yaml:"dealer"`

	HandTiles []string `json:"hand_tiles" yaml:"hand_tiles"` // 不含和了牌
	WinTile   string   `json:"win_tile" yaml:"win_tile"`
	Melds     []Meld   `json:"melds" yaml:"melds"`

	DoraIndicators    []string `json:"dora_indicators" yaml:"dora_indicators"`
	KanDoraIndicators []string `json:"kan_dora_indicators" yaml:"kan_dora_indicators"`
	UraIndicators     []string `json:"ura_indicators" yaml:"ura_indicators"`
	KanUraIndicators  []string `json:"kan_ura_indicators" yaml:"kan_ura_indicators"`

	Flags Flags `json:"flags" yaml:"flags"`
}

// parsedMeld 解析后的副露
type parsedMeld struct {
	Type  MeldType
	Tiles []core.Tile
}

// parsedHand 解析后的整手牌, 单次计分内不可变
type parsedHand struct {
	concealed []core.Tile // 手牌 + 和了牌, 已排序
	win       core.Tile
	melds     []parsedMeld
	all       []core.Tile // 含副露, 用于宝牌/赤宝牌计数

	dora, kanDora, ura, kanUra []core.Tile

	round, seat core.Honor
	riichi      RiichiKind
	flags       Flags
}

func parseRequest(req *ScoreRequest) (*parsedHand, error) {
	if req == nil {
		return nil, core.ErrInvalidRequest.With("reason", "empty request")
	}

	h := &parsedHand{flags: req.Flags}

	var ok bool
	if h.round, ok = req.RoundWind.Honor(); !ok {
		return nil, core.ErrInvalidRequest.With("round_wind", req.RoundWind)
	}
	if h.seat, ok = req.SeatWind.Honor(); !ok {
		return nil, core.ErrInvalidRequest.With("seat_wind", req.SeatWind)
	}
	if req.WinType != WinRon && req.WinType != WinTsumo {
		return nil, core.ErrInvalidRequest.With("win_type", req.WinType)
	}
	if req.Honba < 0 || req.Kyotaku < 0 {
		return nil, core.ErrInvalidRequest.With("reason", "negative honba or kyotaku")
	}

	switch req.Flags.Riichi {
	case "", RiichiNone:
		h.riichi = RiichiNone
	case RiichiSingle, RiichiDouble:
		h.riichi = req.Flags.Riichi
	default:
		return nil, core.ErrInvalidRequest.With("riichi", req.Flags.Riichi)
	}

	hand, err := core.ParseTiles(req.HandTiles)
	if err != nil {
		return nil, err
	}
	h.win, err = core.ParseTile(req.WinTile)
	if err != nil {
		return nil, err
	}
	h.concealed = append(hand, h.win)
	core.SortTiles(h.concealed)

	h.all = core.CloneTiles(h.concealed)
	for i, m := range req.Melds {
		tiles, err := core.ParseTiles(m.Tiles)
		if err != nil {
			return nil, err
		}
		want := 3
		switch m.Type {
		case MeldChi, MeldPon:
		case MeldMinkan, MeldAnkan:
			want = 4
		default:
			return nil, core.ErrInvalidRequest.With("meld_type", m.Type).With("meld", i)
		}
		if len(tiles) != want {
			return nil, core.ErrInvalidRequest.With("meld", i).With("tiles", len(tiles))
		}
		core.SortTiles(tiles)
		h.melds = append(h.melds, parsedMeld{Type: m.Type, Tiles: tiles})
		h.all = append(h.all, tiles...)
	}
	core.SortTiles(h.all)

	for _, ind := range []struct {
		dst   *[]core.Tile
		codes []string
	}{
		{&h.dora, req.DoraIndicators},
		{&h.kanDora, req.KanDoraIndicators},
		{&h.ura, req.UraIndicators},
		{&h.kanUra, req.KanUraIndicators},
	} {
		if *ind.dst, err = core.ParseTiles(ind.codes); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// concealedStrict 门前判定: 吃/碰/明杠破坏门前, 暗杠不破坏
func (h *parsedHand) concealedStrict() bool {
	for _, m := range h.melds {
		if m.Type != MeldAnkan {
			return false
		}
	}
	return true
}
