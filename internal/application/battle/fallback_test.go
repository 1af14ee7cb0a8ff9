package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebattle-ai-api/internal/domain/entity"
)

func TestStatisticalOutcomeWinnerByTotals(t *testing.T) {
	p1 := &entity.SimplifiedPokemon{
		Name:  "pikachu",
		Types: []string{"electric"},
		Stats: entity.BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
		Total: 320,
	}
	p2 := &entity.SimplifiedPokemon{
		Name:  "onix",
		Types: []string{"rock", "ground"},
		Stats: entity.BaseStats{HP: 35, Attack: 45, Defense: 160, SpecialAttack: 30, SpecialDefense: 45, Speed: 70},
		Total: 385,
	}

	outcome := StatisticalOutcome(p1, p2, "model invocation failed: timeout")

	assert.Equal(t, "onix", outcome.Winner)
	assert.Equal(t, "pikachu", outcome.Loser)
	require.Len(t, outcome.BattleLog, 5)
	assert.True(t, outcome.Fallback.Used)
	assert.Contains(t, outcome.Fallback.Reason, "timeout")

	// 分析列出胜者严格占优的项
	assert.Contains(t, outcome.Analysis, "Defense (160 vs 40)")
	assert.NotContains(t, outcome.Analysis, "HP")
}

func TestFallbackTieGoesToFirst(t *testing.T) {
	p1 := &entity.SimplifiedPokemon{Name: "plusle", Total: 405}
	p2 := &entity.SimplifiedPokemon{Name: "minun", Total: 405}

	// 平局判给第一个参数，确定性而非随机
	for i := 0; i < 3; i++ {
		outcome := StatisticalOutcome(p1, p2, "quota exceeded")
		assert.Equal(t, "plusle", outcome.Winner)
		assert.Equal(t, "minun", outcome.Loser)
	}
}

func TestDecideByTotalsStrictlyGreater(t *testing.T) {
	w, l := decideByTotals(
		&entity.SimplifiedPokemon{Name: "a", Total: 100},
		&entity.SimplifiedPokemon{Name: "b", Total: 101},
	)
	assert.Equal(t, "b", w)
	assert.Equal(t, "a", l)
}
