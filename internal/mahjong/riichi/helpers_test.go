package riichi

import (
	"strings"
	"testing"

	"sudooom.mahjong.score/internal/mahjong/core"
)

// codes 空格分隔的牌代码
func codes(s string) []string {
	return strings.Fields(s)
}

func countsOf(t *testing.T, s string) core.Counts {
	t.Helper()
	tiles, err := core.ParseTiles(codes(s))
	if err != nil {
		t.Fatalf("解析 %q 失败: %v", s, err)
	}
	return core.CountTiles(tiles)
}

func key(code string) core.Key {
	return core.MustParseTile(code).Key()
}

// newRequest 东场南家, 荣和, 无立直
func newRequest(hand, win string) *ScoreRequest {
	return &ScoreRequest{
		RoundWind: WindEast,
		SeatWind:  WindSouth,
		WinType:   WinRon,
		HandTiles: codes(hand),
		WinTile:   win,
		Flags:     Flags{Riichi: RiichiNone},
	}
}

func mustScore(t *testing.T, req *ScoreRequest) *ScoreResult {
	t.Helper()
	return mustScoreWith(t, DefaultRules(), req)
}

func mustScoreWith(t *testing.T, rules Rules, req *ScoreRequest) *ScoreResult {
	t.Helper()
	r, err := NewScorer(rules).Score(req)
	if err != nil {
		t.Fatalf("计分失败: %v", err)
	}
	return r
}

func hasYaku(r *ScoreResult, name string) bool {
	for _, y := range r.Yaku {
		if y == name {
			return true
		}
	}
	return false
}
