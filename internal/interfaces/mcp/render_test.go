package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokebattle-ai-api/internal/domain/entity"
)

func TestRenderPokemonIncludesStatsAndTotal(t *testing.T) {
	p := &entity.SimplifiedPokemon{
		ID:        25,
		Name:      "pikachu",
		Types:     []string{"electric"},
		Abilities: []string{"static", "lightning-rod"},
		Stats:     entity.BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
		Total:     320,
	}

	text := renderPokemon(p)

	assert.Contains(t, text, "pikachu (#25)")
	assert.Contains(t, text, "Speed: 90")
	assert.Contains(t, text, "Total: 320")
	assert.Contains(t, text, "static, lightning-rod")

	// 同一输入渲染两次结果一致
	assert.Equal(t, text, renderPokemon(p))
}

func TestRenderSearchResultsEmptyIsNotAnError(t *testing.T) {
	text := renderSearchResults("xyzxyz_not_real", nil)
	assert.Contains(t, text, "No Pokemon matched")
}

func TestRenderPageNumbersFromOffset(t *testing.T) {
	page := &entity.PagedNames{
		Count: 1302,
		Results: []entity.NamedRef{
			{Name: "caterpie"},
			{Name: "metapod"},
		},
	}

	text := renderPage(page, 9)
	assert.Contains(t, text, "10. caterpie")
	assert.Contains(t, text, "11. metapod")
}
