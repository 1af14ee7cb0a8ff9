package entity

// FallbackWitness 记录降级信息
// 模型调用或解析失败时对战结果由统计规则兜底产出，
// Used 为 true 时 Reason 说明触发原因，调用方据此附加非致命告警
type FallbackWitness struct {
	Used   bool   `json:"used"`
	Reason string `json:"reason,omitempty"`
}

// BattleOutcome 一次对战的结构化结果，构造后不再修改
type BattleOutcome struct {
	Winner    string          `json:"winner"`
	Loser     string          `json:"loser"`
	BattleLog []string        `json:"battleLog"`
	Analysis  string          `json:"analysis"`
	Summary   string          `json:"summary"`
	Fallback  FallbackWitness `json:"-"`
}
