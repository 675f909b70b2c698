package riichi

// Outcome 计分结果类别
type Outcome string

const (
	OutcomeWin             Outcome = "win"
	OutcomeStructuralError Outcome = "structural_error" // 副露超过 4 组或无法拆分
	OutcomeNoYaku          Outcome = "no_yaku"          // 可拆分但无役
)

// ScoreResult 计分结果. 结构错误和无役同样以结果返回, 点数为 0
type ScoreResult struct {
	TotalPoints int      `json:"total_points" yaml:"total_points"`
	Yakuman     int      `json:"yakuman" yaml:"yakuman"`
	Han         int      `json:"han" yaml:"han"`
	Fu          int      `json:"fu" yaml:"fu"`
	Yaku        []string `json:"yaku" yaml:"yaku"`
	DoraHan     int      `json:"dora_han" yaml:"dora_han"`
	UraDoraHan  int      `json:"ura_dora_han" yaml:"ura_dora_han"`
	AkaDoraHan  int      `json:"aka_dora_han" yaml:"aka_dora_han"`

	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
	Limit   string  `json:"limit,omitempty" yaml:"limit,omitempty"`
	Wait    string  `json:"wait,omitempty" yaml:"wait,omitempty"`
	Payment Payment `json:"payment" yaml:"payment"`
}

// IsWin 是否有效和了
func (r *ScoreResult) IsWin() bool {
	return r.Outcome == OutcomeWin
}

func failedResult(outcome Outcome, message string) *ScoreResult {
	return &ScoreResult{
		Yaku:    []string{},
		Outcome: outcome,
		Message: message,
	}
}
