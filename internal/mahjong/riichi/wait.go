package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// WaitType 听牌形
type WaitType int8

const (
	WaitNone    WaitType = iota
	WaitTanki            // 单骑
	WaitRyanmen          // 两面
	WaitKanchan          // 嵌张
	WaitPenchan          // 边张
	WaitShanpon          // 双碰
)

func (w WaitType) String() string {
	switch w {
	case WaitTanki:
		return "tanki"
	case WaitRyanmen:
		return "ryanmen"
	case WaitKanchan:
		return "kanchan"
	case WaitPenchan:
		return "penchan"
	case WaitShanpon:
		return "shanpon"
	default:
		return ""
	}
}

// ClassifyWait 判定和了牌如何完成该拆分. 只看门内面子, 副露不会被和了牌完成
// 顺序: 雀头 -> 顺子 -> 刻子. 双碰荣和时返回被完成的刻子下标
func ClassifyWait(d Decomposition, win core.Key, winType WinType) (wait WaitType, ronTriplet int) {
	ronTriplet = -1

	if d.Head == win {
		return WaitTanki, ronTriplet
	}

	for _, b := range d.Blocks {
		if b.Kind != BlockRun || !b.Contains(win) {
			continue
		}
		switch {
		case b.Key.Rank == 1 && win.Rank == 3, b.Key.Rank == 7 && win.Rank == 7:
			return WaitPenchan, ronTriplet
		case win.Rank == b.Key.Rank+1:
			return WaitKanchan, ronTriplet
		default:
			return WaitRyanmen, ronTriplet
		}
	}

	for i, b := range d.Blocks {
		if b.IsSet() && b.Key == win {
			if winType == WinRon {
				ronTriplet = i
			}
			return WaitShanpon, ronTriplet
		}
	}

	return WaitNone, ronTriplet
}
