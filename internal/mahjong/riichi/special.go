package riichi

import (
	"sudooom.mahjong.score/internal/mahjong/core"
)

// SpecialHand 特殊和了形
type SpecialHand int8

const (
	SpecialNone        SpecialHand = iota
	SpecialSevenPairs              // 七对子
	SpecialOrphans                 // 国士无双
	SpecialOrphans13               // 国士无双十三面
)

func (s SpecialHand) String() string {
	switch s {
	case SpecialSevenPairs:
		return "seven_pairs"
	case SpecialOrphans:
		return "thirteen_orphans"
	case SpecialOrphans13:
		return "thirteen_orphans_13"
	default:
		return "none"
	}
}

// DetectSpecial 识别七对子/国士无双. 有任何副露时一律不成立
func DetectSpecial(counts core.Counts, win core.Key, hasMelds bool) SpecialHand {
	if hasMelds || counts.Total() != 14 {
		return SpecialNone
	}

	if isSevenPairs(&counts) {
		return SpecialSevenPairs
	}

	if !counts.All(core.Key.IsTerminalOrHonor) {
		return SpecialNone
	}

	var (
		pair  core.Key
		pairs int
	)
	for _, k := range core.OrphanKeys() {
		switch counts.Of(k) {
		case 1:
		case 2:
			pair = k
			pairs++
		default:
			return SpecialNone
		}
	}
	if pairs != 1 {
		return SpecialNone
	}
	if pair == win {
		return SpecialOrphans13
	}
	return SpecialOrphans
}

// isSevenPairs 7 种牌各 2 张, 四张同种不算两对
func isSevenPairs(c *core.Counts) bool {
	if c.Distinct() != 7 {
		return false
	}
	return c.All(func(k core.Key) bool { return c.Of(k) == 2 })
}
