package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudooom.mahjong.score/internal/mahjong/core"
	"sudooom.mahjong.score/internal/mahjong/riichi"
)

func writeHand(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const chiitoitsuHand = `
round_wind: E
seat_wind: S
win_type: RON
dealer: false
hand_tiles: [2m, 2m, 4p, 4p, 6s, 6s, 8m, 8m, 3p, 3p, 7s, 7s, 9p]
win_tile: 9p
flags:
  riichi: NONE
`

func TestRun_SevenPairs(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", writeHand(t, chiitoitsuHand)}, &out))

	var result riichi.ScoreResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, riichi.OutcomeWin, result.Outcome)
	assert.Equal(t, 25, result.Fu)
	assert.Equal(t, 2, result.Han)
	assert.Equal(t, 1600, result.TotalPoints)
}

func TestRun_OpenTanyaoSwitch(t *testing.T) {
	hand := `
round_wind: E
seat_wind: S
win_type: RON
hand_tiles: [2m, 3m, 4m, 5p, 6p, 7p, 3s, 4s, 6s, 6s]
win_tile: 5s
melds:
  - type: CHI
    tiles: [6m, 7m, 8m]
`
	path := writeHand(t, hand)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", path}, &out))
	assert.Contains(t, out.String(), `"Tanyao"`)

	out.Reset()
	require.NoError(t, run([]string{"-open-tanyao=false", "-f", path}, &out))
	assert.Contains(t, out.String(), `"outcome": "no_yaku"`)
}

func TestRun_Errors(t *testing.T) {
	err := run(nil, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-f", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	assert.Error(t, err)

	bad := writeHand(t, "round_wind: E\nseat_wind: S\nwin_type: RON\nhand_tiles: [1x]\nwin_tile: 1m\n")
	err = run([]string{"-f", bad}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidTileCode))
	assert.Equal(t, 2, appExitCode(err))
}
