package model

import (
	"encoding/json"
	"time"
)

// ScoreRecord 计分记录实体
type ScoreRecord struct {
	Id          int64           `json:"id" db:"id"`
	Fingerprint string          `json:"fingerprint" db:"fingerprint"`
	Request     json.RawMessage `json:"request" db:"request"`
	Result      json.RawMessage `json:"result" db:"result"`
	Outcome     string          `json:"outcome" db:"outcome"`
	TotalPoints int             `json:"total_points" db:"total_points"`
	Han         int             `json:"han" db:"han"`
	Fu          int             `json:"fu" db:"fu"`
	Yakuman     int             `json:"yakuman" db:"yakuman"`
	CreateAt    time.Time       `json:"create_at" db:"create_at"`
}
