package riichi

import (
	"errors"
	"testing"

	"sudooom.mahjong.score/internal/mahjong/core"
)

func TestScore_SuuankouTanki(t *testing.T) {
	req := newRequest("2m 2m 2m 3m 3m 3m 4m 4m 4m 5m 5m 5m 6m", "6m")
	req.WinType = WinTsumo

	r := mustScore(t, req)
	if !r.IsWin() {
		t.Fatalf("期望和了, 实际 %+v", r)
	}
	if r.Yakuman != 2 || r.Han != 0 {
		t.Errorf("期望双倍役满且番数为 0, 实际 yakuman=%d han=%d", r.Yakuman, r.Han)
	}
	if !hasYaku(r, "Suuankou Tanki") {
		t.Errorf("期望四暗刻单骑, 实际 %v", r.Yaku)
	}
	if r.TotalPoints != 64000 {
		t.Errorf("期望 64000, 实际 %d", r.TotalPoints)
	}
	if r.Wait != "tanki" {
		t.Errorf("期望单骑, 实际 %s", r.Wait)
	}
}

func TestScore_SevenPairs(t *testing.T) {
	r := mustScore(t, newRequest("1m 1m 3m 3m 5m 5m 7p 7p 9p 9p 2s 2s E", "E"))

	if r.Fu != 25 || r.Han != 2 {
		t.Errorf("期望 2番25符, 实际 %d番%d符", r.Han, r.Fu)
	}
	if len(r.Yaku) != 1 || r.Yaku[0] != "Chiitoitsu" {
		t.Errorf("期望只有七对子, 实际 %v", r.Yaku)
	}
	if r.TotalPoints != 1600 {
		t.Errorf("期望 1600, 实际 %d", r.TotalPoints)
	}
}

func TestScore_StructuralError(t *testing.T) {
	req := newRequest("1m 1m 2m 3m 4m 5m 6m 7m 8m 9m 1p 1p 1p", "1p")
	req.WinType = WinTsumo

	r := mustScore(t, req)
	if r.Outcome != OutcomeStructuralError {
		t.Fatalf("期望结构错误, 实际 %+v", r)
	}
	if r.TotalPoints != 0 || r.Message == "" {
		t.Errorf("结构错误应为 0 点并带诊断信息: %+v", r)
	}
}

func TestScore_TooManyMelds(t *testing.T) {
	req := newRequest("1m", "1m")
	for _, c := range []string{"2m", "3p", "4s", "5m", "6p"} {
		req.Melds = append(req.Melds, Meld{Type: MeldPon, Tiles: []string{c, c, c}})
	}

	r := mustScore(t, req)
	if r.Outcome != OutcomeStructuralError {
		t.Errorf("期望结构错误, 实际 %+v", r)
	}
}

func TestScore_FourMeldsPairOnly(t *testing.T) {
	req := newRequest("4p", "4p")
	req.Melds = []Meld{
		{Type: MeldPon, Tiles: codes("2p 2p 2p")},
		{Type: MeldPon, Tiles: codes("5s 5s 5s")},
		{Type: MeldChi, Tiles: codes("3m 4m 5m")},
		{Type: MeldChi, Tiles: codes("6m 7m 8m")},
	}

	r := mustScore(t, req)
	if !r.IsWin() {
		t.Fatalf("期望和了, 实际 %+v", r)
	}
	if r.Han != 1 || r.Fu != 30 || r.TotalPoints != 1000 {
		t.Errorf("期望 1番30符 1000, 实际 %d番%d符 %d", r.Han, r.Fu, r.TotalPoints)
	}
	if !hasYaku(r, "Tanyao") {
		t.Errorf("期望断幺九, 实际 %v", r.Yaku)
	}
}

func TestScore_PinfuTsumo20Fu(t *testing.T) {
	req := newRequest("2m 3m 4m 5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
	req.WinType = WinTsumo

	r := mustScore(t, req)
	if r.Fu != 20 || r.Han != 3 {
		t.Errorf("期望 3番20符, 实际 %d番%d符", r.Han, r.Fu)
	}
	want := []string{"Menzen Tsumo", "Tanyao", "Pinfu"}
	if len(r.Yaku) != len(want) {
		t.Fatalf("期望 %v, 实际 %v", want, r.Yaku)
	}
	for i := range want {
		if r.Yaku[i] != want[i] {
			t.Errorf("期望 %v, 实际 %v", want, r.Yaku)
		}
	}
	if r.Payment.FromDealer != 1300 || r.Payment.FromNonDealer != 700 || r.TotalPoints != 2700 {
		t.Errorf("期望 700/1300, 实际 %+v", r.Payment)
	}
}

func TestScore_PinfuRon(t *testing.T) {
	r := mustScore(t, newRequest("2m 3m 4m 5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s"))
	if r.Fu != 30 || r.Han != 2 || r.TotalPoints != 2000 {
		t.Errorf("期望 2番30符 2000, 实际 %d番%d符 %d", r.Han, r.Fu, r.TotalPoints)
	}
}

func TestScore_OpenPinfuShapeBumpedTo30(t *testing.T) {
	req := newRequest("5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
	req.Melds = []Meld{{Type: MeldChi, Tiles: codes("2m 3m 4m")}}

	r := mustScore(t, req)
	if r.Fu != 30 {
		t.Errorf("副露平和形荣和应为 30 符, 实际 %d", r.Fu)
	}
	if hasYaku(r, "Pinfu") {
		t.Error("副露不能成立平和")
	}
	if r.TotalPoints != 1000 {
		t.Errorf("期望 1000, 实际 %d", r.TotalPoints)
	}

	closed := Rules{OpenTanyao: false, DoubleYakuman: true}
	r = mustScoreWith(t, closed, req)
	if r.Outcome != OutcomeNoYaku {
		t.Errorf("禁止食断时期望无役, 实际 %+v", r)
	}
}

func TestScore_DoraAndAka(t *testing.T) {
	req := newRequest("2m 3m 4m 0p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
	req.WinType = WinTsumo
	req.DoraIndicators = []string{"1m"}
	req.UraIndicators = []string{"3s"}

	r := mustScore(t, req)
	if r.DoraHan != 1 || r.AkaDoraHan != 1 || r.UraDoraHan != 0 {
		t.Errorf("期望宝牌1 赤1 里0, 实际 %d/%d/%d", r.DoraHan, r.AkaDoraHan, r.UraDoraHan)
	}
	if r.Han != 5 || r.Limit != "Mangan" || r.TotalPoints != 8000 {
		t.Errorf("期望 5番满贯 8000, 实际 %d番 %s %d", r.Han, r.Limit, r.TotalPoints)
	}
	if !hasYaku(r, "Dora 1") || !hasYaku(r, "Aka Dora 1") || hasYaku(r, "Ura Dora 1") {
		t.Errorf("宝牌记录不符: %v", r.Yaku)
	}

	req.Flags.Riichi = RiichiSingle
	r = mustScore(t, req)
	if r.UraDoraHan != 1 || r.Han != 7 {
		t.Errorf("立直时期望里宝牌 1 共 7 番, 实际 %d/%d", r.UraDoraHan, r.Han)
	}
	if r.Limit != "Haneman" || r.TotalPoints != 12000 {
		t.Errorf("期望跳满 12000, 实际 %s %d", r.Limit, r.TotalPoints)
	}
}

func TestScore_DoraCountsMeldTiles(t *testing.T) {
	req := newRequest("5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
	req.Melds = []Meld{{Type: MeldChi, Tiles: codes("2m 3m 4m")}}
	req.DoraIndicators = []string{"2m"}

	r := mustScore(t, req)
	if r.DoraHan != 1 {
		t.Errorf("副露中的宝牌也应计数, 实际 %d", r.DoraHan)
	}
}

func TestScore_ShanponRonIsOpen(t *testing.T) {
	// 荣和双碰, 666s 视为明刻, 不成立三暗刻
	req := newRequest("2m 2m 2m 4p 4p 4p 6s 6s 7s 8s 9s 5m 5m", "6s")
	r := mustScore(t, req)
	if r.Outcome != OutcomeNoYaku {
		t.Fatalf("期望无役, 实际 %+v", r)
	}

	req.Flags.Riichi = RiichiSingle
	r = mustScore(t, req)
	if hasYaku(r, "Sanankou") {
		t.Error("荣和完成的刻子不应计入暗刻")
	}
	if r.Fu != 40 || r.TotalPoints != 1300 {
		t.Errorf("期望 1番40符 1300, 实际 %d番%d符 %d", r.Han, r.Fu, r.TotalPoints)
	}

	req.Flags.Riichi = RiichiNone
	req.WinType = WinTsumo
	r = mustScore(t, req)
	if !hasYaku(r, "Sanankou") || r.Han != 3 || r.Fu != 40 {
		t.Errorf("自摸时期望三暗刻 3番40符, 实际 %v %d番%d符", r.Yaku, r.Han, r.Fu)
	}
	if r.TotalPoints != 5200 {
		t.Errorf("期望 5200, 实际 %d", r.TotalPoints)
	}
}

func TestScore_ShanponRonBlocksSuuankou(t *testing.T) {
	req := newRequest("2m 2m 2m 4p 4p 4p 6s 6s 6s 8s 8s 5m 5m", "8s")
	r := mustScore(t, req)
	if r.Yakuman != 0 || hasYaku(r, "Suuankou") {
		t.Fatalf("荣和双碰不成立四暗刻: %+v", r)
	}
	if !hasYaku(r, "Sanankou") || !hasYaku(r, "Toitoi") {
		t.Errorf("期望三暗刻+对对和, 实际 %v", r.Yaku)
	}

	req.WinType = WinTsumo
	r = mustScore(t, req)
	if r.Yakuman != 1 || !hasYaku(r, "Suuankou") || r.TotalPoints != 32000 {
		t.Errorf("自摸期望四暗刻 32000, 实际 %+v", r)
	}
}

func TestScore_Kokushi13(t *testing.T) {
	req := newRequest("1m 9m 1p 9p 1s 9s E S W N P F C", "1m")
	req.Dealer = true
	req.SeatWind = WindEast

	r := mustScore(t, req)
	if r.Yakuman != 2 || r.TotalPoints != 96000 || r.Han != 0 {
		t.Errorf("期望双倍役满 96000, 实际 %+v", r)
	}

	single := Rules{OpenTanyao: true, DoubleYakuman: false}
	r = mustScoreWith(t, single, req)
	if r.Yakuman != 1 || r.TotalPoints != 48000 {
		t.Errorf("关闭双倍役满时期望 48000, 实际 %+v", r)
	}
}

func TestScore_YakumanDropsHan(t *testing.T) {
	req := newRequest("P P P F F F C C C 2m 3m 4m 9p", "9p")
	req.DoraIndicators = []string{"8p"}

	r := mustScore(t, req)
	if !hasYaku(r, "Daisangen") || r.Yakuman != 1 {
		t.Fatalf("期望大三元, 实际 %+v", r)
	}
	if r.Han != 0 || r.DoraHan != 0 {
		t.Errorf("役满不计番和宝牌, 实际 han=%d dora=%d", r.Han, r.DoraHan)
	}
	if r.TotalPoints != 32000 {
		t.Errorf("期望 32000, 实际 %d", r.TotalPoints)
	}
}

func TestScore_RyanpeikouBeatsSevenPairs(t *testing.T) {
	r := mustScore(t, newRequest("2m 2m 3m 3m 4m 4m 6p 6p 7p 7p 8p 8p 5s", "5s"))

	if !hasYaku(r, "Ryanpeikou") || hasYaku(r, "Chiitoitsu") {
		t.Errorf("期望二杯口解释, 实际 %v", r.Yaku)
	}
	if r.Han != 4 || r.Fu != 40 || r.TotalPoints != 8000 {
		t.Errorf("期望 4番40符 8000, 实际 %d番%d符 %d", r.Han, r.Fu, r.TotalPoints)
	}
}

func TestScore_DoubleWind(t *testing.T) {
	req := newRequest("E E E 2m 3m 4m 5p 6p 7p 3s 4s 5s 9s", "9s")
	req.SeatWind = WindEast
	req.Dealer = true

	r := mustScore(t, req)
	if !hasYaku(r, "Round Wind East") || !hasYaku(r, "Seat Wind East") {
		t.Errorf("连风牌应计两番, 实际 %v", r.Yaku)
	}
	if r.Han != 2 || r.Fu != 40 || r.TotalPoints != 3900 {
		t.Errorf("期望 2番40符 3900, 实际 %d番%d符 %d", r.Han, r.Fu, r.TotalPoints)
	}
}

func TestScore_JunseiChuuren(t *testing.T) {
	req := newRequest("1m 1m 1m 2m 3m 4m 5m 6m 7m 8m 9m 9m 9m", "5m")
	req.WinType = WinTsumo

	r := mustScore(t, req)
	if !hasYaku(r, "Junsei Chuuren Poutou") || r.Yakuman != 2 {
		t.Errorf("期望纯正九莲宝灯, 实际 %+v", r)
	}
	if r.TotalPoints != 64000 {
		t.Errorf("期望 64000, 实际 %d", r.TotalPoints)
	}
}

func TestScore_HonbaKyotaku(t *testing.T) {
	req := newRequest("2m 3m 4m 5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
	req.Honba = 1
	req.Kyotaku = 2

	r := mustScore(t, req)
	if r.TotalPoints != 2000+300+2000 {
		t.Errorf("期望 4300, 实际 %d", r.TotalPoints)
	}
}

func TestScore_InvalidInput(t *testing.T) {
	scorer := NewScorer(DefaultRules())

	_, err := scorer.Score(newRequest("1m 2x", "3m"))
	if !errors.Is(err, core.ErrInvalidTileCode) {
		t.Errorf("期望 ErrInvalidTileCode, 实际 %v", err)
	}

	req := newRequest("1m", "1m")
	req.RoundWind = "X"
	if _, err := scorer.Score(req); !errors.Is(err, core.ErrInvalidRequest) {
		t.Errorf("期望 ErrInvalidRequest, 实际 %v", err)
	}

	req = newRequest("1m", "1m")
	req.Melds = []Meld{{Type: "KAN", Tiles: codes("2m 2m 2m 2m")}}
	if _, err := scorer.Score(req); !errors.Is(err, core.ErrInvalidRequest) {
		t.Errorf("未知副露类型期望 ErrInvalidRequest, 实际 %v", err)
	}

	req = newRequest("1m", "1m")
	req.DoraIndicators = []string{"Q"}
	if _, err := scorer.Score(req); !errors.Is(err, core.ErrInvalidTileCode) {
		t.Errorf("宝牌指示牌非法期望 ErrInvalidTileCode, 实际 %v", err)
	}
}

func TestScore_FuAlwaysMultipleOf10(t *testing.T) {
	hands := []struct{ hand, win string }{
		{"2m 3m 4m 5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s"},
		{"E E E 2m 3m 4m 5p 6p 7p 3s 4s 5s 9s", "9s"},
		{"2m 2m 2m 4p 4p 4p 6s 6s 6s 8s 8s 5m 5m", "8s"},
		{"1m 1m 1m 2m 3m 4m 6p 7p 8p 7s 8s 9s N", "N"},
	}
	for _, h := range hands {
		for _, wt := range []WinType{WinRon, WinTsumo} {
			req := newRequest(h.hand, h.win)
			req.WinType = wt
			req.Flags.Riichi = RiichiSingle
			r := mustScore(t, req)
			if r.Fu%10 != 0 {
				t.Errorf("%s %s: 符数 %d 不是 10 的倍数", h.hand, wt, r.Fu)
			}
		}
	}
}

func TestScore_ChantaWithoutRuns(t *testing.T) {
	// 全刻子的幺九形: 混全带幺九与混老头, 对对和叠加
	r := mustScore(t, newRequest("1m 1m 1m 9p 9p 9p 1s 1s 1s W W 9s 9s", "9s"))

	for _, name := range []string{"Chanta", "Honroutou", "Toitoi", "Sanankou"} {
		if !hasYaku(r, name) {
			t.Errorf("缺少 %s, 实际 %v", name, r.Yaku)
		}
	}
	if r.Han != 8 || r.Limit != "Baiman" || r.TotalPoints != 16000 {
		t.Errorf("期望 8番倍满 16000, 实际 %d番 %s %d", r.Han, r.Limit, r.TotalPoints)
	}
}

func TestScore_SituationalFlags(t *testing.T) {
	// 立直 平和 断幺 共 3 番
	base := func() *ScoreRequest {
		req := newRequest("2m 3m 4m 5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
		req.Flags.Riichi = RiichiSingle
		return req
	}
	baseHan := mustScore(t, base()).Han
	if baseHan != 3 {
		t.Fatalf("基准期望 3 番, 实际 %d", baseHan)
	}

	cases := []struct {
		name  string
		set   func(f *Flags)
		want  string
		delta int
	}{
		{"一发", func(f *Flags) { f.Ippatsu = true }, "Ippatsu", 1},
		{"岭上开花", func(f *Flags) { f.Rinshan = true }, "Rinshan Kaihou", 1},
		{"抢杠", func(f *Flags) { f.Chankan = true }, "Chankan", 1},
		{"海底摸月", func(f *Flags) { f.Haitei = true }, "Haitei Raoyue", 1},
		{"河底捞鱼", func(f *Flags) { f.Houtei = true }, "Houtei Raoyui", 1},
		{"两立直", func(f *Flags) { f.Riichi = RiichiDouble }, "Double Riichi", 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := base()
			c.set(&req.Flags)

			r := mustScore(t, req)
			if !hasYaku(r, c.want) {
				t.Errorf("缺少 %s, 实际 %v", c.want, r.Yaku)
			}
			if r.Han != baseHan+c.delta {
				t.Errorf("期望 %d 番, 实际 %d", baseHan+c.delta, r.Han)
			}
		})
	}

	req := base()
	req.Flags = Flags{Riichi: RiichiDouble, Ippatsu: true, Houtei: true}
	r := mustScore(t, req)
	if hasYaku(r, "Riichi") {
		t.Errorf("两立直不应同时计立直, 实际 %v", r.Yaku)
	}
	// 两立直 2 + 一发 + 河底 + 平和 + 断幺
	if r.Han != 6 || r.Limit != "Haneman" || r.TotalPoints != 12000 {
		t.Errorf("期望 6番跳满 12000, 实际 %d番 %s %d", r.Han, r.Limit, r.TotalPoints)
	}
}

func TestScore_OpenTanyaoRule(t *testing.T) {
	req := newRequest("5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s")
	req.Melds = []Meld{{Type: MeldChi, Tiles: codes("2m 3m 4m")}}

	r := mustScore(t, req)
	if !hasYaku(r, "Tanyao") || r.Han != 1 {
		t.Errorf("默认允许食断, 实际 %v %d番", r.Yaku, r.Han)
	}

	closed := Rules{OpenTanyao: false, DoubleYakuman: true}
	r = mustScoreWith(t, closed, req)
	if r.Outcome != OutcomeNoYaku || hasYaku(r, "Tanyao") {
		t.Errorf("禁止食断时副露断幺应无役, 实际 %+v", r)
	}

	// 门前断幺不受影响
	r = mustScoreWith(t, closed, newRequest("2m 3m 4m 5p 6p 7p 6s 7s 8s 3s 4s 5m 5m", "2s"))
	if !hasYaku(r, "Tanyao") {
		t.Errorf("门前断幺应成立, 实际 %v", r.Yaku)
	}
}
