package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokebattle-ai-api/internal/application/battle"
	"pokebattle-ai-api/internal/domain/entity"
	"pokebattle-ai-api/internal/interfaces/http/dto"
	apperrors "pokebattle-ai-api/pkg/errors"
	"pokebattle-ai-api/pkg/logger"
)

// BattleRunner 对战模拟用例
type BattleRunner interface {
	Simulate(ctx context.Context, p1, p2 *entity.SimplifiedPokemon) *entity.BattleOutcome
}

// BattleHandler 对战模拟处理器
type BattleHandler struct {
	pokedex   PokedexReader
	simulator BattleRunner
}

// NewBattleHandler 创建对战模拟处理器
func NewBattleHandler(pokedex PokedexReader, simulator BattleRunner) *BattleHandler {
	return &BattleHandler{pokedex: pokedex, simulator: simulator}
}

// Simulate 模拟一场对战
// POST /api/battle
// 参战方数据获取失败直接报错；模型失败不报错，由统计兜底产出结果
func (h *BattleHandler) Simulate(c *gin.Context) {
	var req dto.BattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Fail(c, apperrors.New(apperrors.CodeInvalidParam, "invalid battle request").
			WithDetail("body must be {pokemon1:{name}, pokemon2:{name}}").
			WithError(err))
		return
	}

	ctx := c.Request.Context()
	p1, p2, err := h.pokedex.GetPair(ctx, req.Pokemon1.Name, req.Pokemon2.Name)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	outcome := h.simulator.Simulate(ctx, p1, p2)
	if outcome.Fallback.Used {
		logger.Warn(ctx, "battle resolved by statistical fallback",
			"pokemon1", p1.Name,
			"pokemon2", p2.Name,
			"reason", outcome.Fallback.Reason,
		)
	}

	report := battle.NewBattleReport(outcome, p1, p2)
	c.JSON(http.StatusOK, dto.NewBattleResponse(report))
}
