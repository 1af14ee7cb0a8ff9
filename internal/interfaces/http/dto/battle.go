package dto

import (
	"time"

	"pokebattle-ai-api/internal/application/battle"
)

// NamedPokemon 对战请求中的参战方
type NamedPokemon struct {
	Name string `json:"name" binding:"required"`
}

// BattleRequest 对战模拟请求体
type BattleRequest struct {
	Pokemon1 NamedPokemon `json:"pokemon1" binding:"required"`
	Pokemon2 NamedPokemon `json:"pokemon2" binding:"required"`
}

// BattleMetadata 对战响应元数据
// UsingFallback 为 true 表示结果由统计兜底产出，调用方不应视为失败
type BattleMetadata struct {
	Timestamp     string `json:"timestamp"`
	UsingFallback bool   `json:"usingFallback"`
	Pokemon1      string `json:"pokemon1"`
	Pokemon2      string `json:"pokemon2"`
	ServerStatus  string `json:"serverStatus"`
}

// BattleResponse 对战模拟响应体
type BattleResponse struct {
	Winner    string         `json:"winner"`
	Loser     string         `json:"loser"`
	BattleLog []string       `json:"battleLog"`
	Analysis  string         `json:"analysis"`
	Summary   string         `json:"summary"`
	Metadata  BattleMetadata `json:"metadata"`
}

// NewBattleResponse 从对战报告构造响应体
func NewBattleResponse(report *battle.BattleReport) *BattleResponse {
	status := "operational"
	if report.UsingFallback {
		status = "degraded: " + report.FallbackReason
	}
	return &BattleResponse{
		Winner:    report.Winner,
		Loser:     report.Loser,
		BattleLog: report.BattleLog,
		Analysis:  report.Analysis,
		Summary:   report.Summary,
		Metadata: BattleMetadata{
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			UsingFallback: report.UsingFallback,
			Pokemon1:      report.Pokemon1,
			Pokemon2:      report.Pokemon2,
			ServerStatus:  status,
		},
	}
}
