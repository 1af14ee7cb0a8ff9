package battle

import (
	"fmt"
	"strings"

	"pokebattle-ai-api/internal/domain/entity"
)

// BattleReport 对战结果的统一视图模型
// 两个边界（HTTP JSON 与工具协议）都从它出发渲染，
// 避免两套格式化逻辑各自漂移
type BattleReport struct {
	Pokemon1       string   `json:"pokemon1"`
	Pokemon2       string   `json:"pokemon2"`
	Winner         string   `json:"winner"`
	Loser          string   `json:"loser"`
	BattleLog      []string `json:"battleLog"`
	Analysis       string   `json:"analysis"`
	Summary        string   `json:"summary"`
	UsingFallback  bool     `json:"usingFallback"`
	FallbackReason string   `json:"fallbackReason,omitempty"`
}

// NewBattleReport 从对战结果构造视图模型
func NewBattleReport(outcome *entity.BattleOutcome, p1, p2 *entity.SimplifiedPokemon) *BattleReport {
	return &BattleReport{
		Pokemon1:       p1.Name,
		Pokemon2:       p2.Name,
		Winner:         outcome.Winner,
		Loser:          outcome.Loser,
		BattleLog:      outcome.BattleLog,
		Analysis:       outcome.Analysis,
		Summary:        outcome.Summary,
		UsingFallback:  outcome.Fallback.Used,
		FallbackReason: outcome.Fallback.Reason,
	}
}

// RenderText 渲染人类可读文本
// 对同一个报告重复调用结果逐字节一致；
// 降级信息不会被静默丢弃
func (r *BattleReport) RenderText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Battle: %s vs %s\n\n", r.Pokemon1, r.Pokemon2)
	fmt.Fprintf(&b, "Winner: %s\n", r.Winner)
	fmt.Fprintf(&b, "Loser: %s\n\n", r.Loser)

	b.WriteString("Battle Log:\n")
	for _, line := range r.BattleLog {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	fmt.Fprintf(&b, "\nStrategic Analysis:\n%s\n", r.Analysis)
	fmt.Fprintf(&b, "\nSummary:\n%s\n", r.Summary)

	if r.UsingFallback {
		fmt.Fprintf(&b, "\nNote: the generative model was unavailable (%s); this outcome was derived from base stats.\n", r.FallbackReason)
	}

	return b.String()
}
