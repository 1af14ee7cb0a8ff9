package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebattle-ai-api/internal/domain/entity"
)

func mon(name string, total int) *entity.SimplifiedPokemon {
	// 把总和集中到 HP 上即可，解析只关心 Total 与名称
	return &entity.SimplifiedPokemon{
		Name:  name,
		Stats: entity.BaseStats{HP: total},
		Total: total,
	}
}

const wellFormed = `**WINNER:** Pikachu

**BATTLE LOG:**
Turn 1: Pikachu strikes first with Thunderbolt.
Turn 2: Onix retaliates with Rock Throw.
Turn 3: Pikachu dodges and uses Quick Attack.
Turn 4: Onix slams the ground.
Turn 5: Pikachu finishes with Iron Tail.

**STRATEGIC ANALYSIS:**
Pikachu's speed advantage decided the exchange.

**SUMMARY:**
A fast, decisive win for Pikachu.`

func TestParseWellFormedSections(t *testing.T) {
	p1 := mon("pikachu", 320)
	p2 := mon("onix", 385)

	outcome, fellBack := outcomeFromText(wellFormed, p1, p2)
	assert.False(t, fellBack)

	assert.Equal(t, "pikachu", outcome.Winner)
	assert.Equal(t, "onix", outcome.Loser)
	require.Len(t, outcome.BattleLog, 5)
	assert.Equal(t, "Turn 1: Pikachu strikes first with Thunderbolt.", outcome.BattleLog[0])
	assert.Equal(t, "Pikachu's speed advantage decided the exchange.", outcome.Analysis)
	assert.Equal(t, "A fast, decisive win for Pikachu.", outcome.Summary)
}

func TestParseSectionsInAnyOrder(t *testing.T) {
	reordered := `**SUMMARY:**
Onix takes it.

**STRATEGIC ANALYSIS:**
Bulk beats speed today.

**WINNER:** Onix

**BATTLE LOG:**
Turn 1: Onix endures.
Turn 2: Onix strikes back.`

	outcome, fellBack := outcomeFromText(reordered, mon("pikachu", 320), mon("onix", 385))
	assert.False(t, fellBack)

	assert.Equal(t, "onix", outcome.Winner)
	assert.Equal(t, "pikachu", outcome.Loser)
	assert.Equal(t, []string{"Turn 1: Onix endures.", "Turn 2: Onix strikes back."}, outcome.BattleLog)
	assert.Equal(t, "Bulk beats speed today.", outcome.Analysis)
	assert.Equal(t, "Onix takes it.", outcome.Summary)
}

func TestParseMultilineAnalysisJoinedWithSpaces(t *testing.T) {
	text := `**WINNER:** onix
**BATTLE LOG:**
Turn 1: something happens.
**STRATEGIC ANALYSIS:**
First sentence.
Second sentence.
**SUMMARY:**
Done.`

	outcome, _ := outcomeFromText(text, mon("pikachu", 1), mon("onix", 2))
	assert.Equal(t, "First sentence. Second sentence.", outcome.Analysis)
}

func TestParseMissingWinnerFallsBackToTotals(t *testing.T) {
	text := "The battle was fierce but inconclusive prose with no headings."

	outcome, fellBack := outcomeFromText(text, mon("pikachu", 320), mon("onix", 385))
	assert.True(t, fellBack)

	// 总和严格更大的一方获胜
	assert.Equal(t, "onix", outcome.Winner)
	assert.Equal(t, "pikachu", outcome.Loser)

	// 对战记录退化为原始文本单条目
	require.Len(t, outcome.BattleLog, 1)
	assert.Equal(t, text, outcome.BattleLog[0])

	assert.Contains(t, outcome.Analysis, "onix")
	assert.Contains(t, outcome.Summary, "onix")
}

func TestParseWinnerCaseInsensitiveMatch(t *testing.T) {
	text := "**WINNER:** PIKACHU"

	outcome, _ := outcomeFromText(text, mon("pikachu", 320), mon("onix", 385))
	assert.Equal(t, "pikachu", outcome.Winner)
	assert.Equal(t, "onix", outcome.Loser)
}

func TestHeadingMatchIsCaseSensitive(t *testing.T) {
	// 小写标题不是契约的一部分，整体按无标题文本处理
	text := "**winner:** pikachu"

	outcome, fellBack := outcomeFromText(text, mon("pikachu", 320), mon("onix", 385))
	assert.True(t, fellBack)
	assert.Equal(t, "onix", outcome.Winner)
}
