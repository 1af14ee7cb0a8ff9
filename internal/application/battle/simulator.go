package battle

import (
	"context"
	"time"

	"github.com/cloudwego/eino/components/model"

	"pokebattle-ai-api/internal/domain/entity"
	einoobs "pokebattle-ai-api/internal/observability/eino"
	"pokebattle-ai-api/pkg/logger"
	"pokebattle-ai-api/pkg/metrics"
)

// workflowName 对战模拟在可观测性标签中的名称
const workflowName = "battle_simulation"

// ChatModelFactory 定义管线对 LLM ChatModel 的最小依赖（port）。
// 由基础设施层提供具体实现（例如 EinoFactory）。
type ChatModelFactory interface {
	Get(ctx context.Context, name string) (model.BaseChatModel, error)
}

// Simulator 对战结果派生管线
type Simulator struct {
	factory  ChatModelFactory
	provider string
}

// NewSimulator 创建对战模拟器，provider 为空时使用默认提供商
func NewSimulator(factory ChatModelFactory, provider string) *Simulator {
	return &Simulator{
		factory:  factory,
		provider: provider,
	}
}

// Simulate 派生一次对战结果
// 模型调用或解析失败一律降级为统计兜底结果并记录见证，
// 绝不向调用方返回错误；基础数据由调用方在进入管线前保证
func (s *Simulator) Simulate(ctx context.Context, p1, p2 *entity.SimplifiedPokemon) *entity.BattleOutcome {
	start := time.Now()
	ctx = einoobs.WithWorkflowProvider(ctx, workflowName, s.provider)

	outcome := s.derive(ctx, p1, p2)

	mode := "llm"
	if outcome.Fallback.Used {
		mode = "fallback"
	}
	metrics.BattleSimulationsTotal.WithLabelValues(mode).Inc()
	metrics.BattleSimulationDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	return outcome
}

// derive 执行提示词构建、模型调用与解析
func (s *Simulator) derive(ctx context.Context, p1, p2 *entity.SimplifiedPokemon) *entity.BattleOutcome {
	msgs, err := formatBattleMessages(ctx, p1, p2)
	if err != nil {
		logger.Error(ctx, "failed to format battle prompt, using statistical fallback", err,
			"pokemon1", p1.Name, "pokemon2", p2.Name)
		return StatisticalOutcome(p1, p2, "prompt build failed: "+err.Error())
	}

	chatModel, err := s.factory.Get(ctx, s.provider)
	if err != nil {
		logger.Error(ctx, "failed to create chat model, using statistical fallback", err,
			"provider", s.provider)
		return StatisticalOutcome(p1, p2, "chat model unavailable: "+err.Error())
	}

	// 管线唯一的挂起点，不重试
	outMsg, err := chatModel.Generate(ctx, msgs)
	if err != nil {
		logger.Warn(ctx, "llm call failed, using statistical fallback",
			"pokemon1", p1.Name, "pokemon2", p2.Name, "error", err.Error())
		return StatisticalOutcome(p1, p2, "model invocation failed: "+err.Error())
	}
	if outMsg == nil || outMsg.Content == "" {
		logger.Warn(ctx, "llm returned empty response, using statistical fallback",
			"pokemon1", p1.Name, "pokemon2", p2.Name)
		return StatisticalOutcome(p1, p2, "empty model response")
	}

	outcome, fieldFallback := outcomeFromText(outMsg.Content, p1, p2)
	if fieldFallback {
		logger.Debug(ctx, "model response missing sections, applied field-level fallbacks",
			"pokemon1", p1.Name, "pokemon2", p2.Name)
	}
	return outcome
}
