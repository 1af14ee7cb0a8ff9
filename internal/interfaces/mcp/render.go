package mcp

import (
	"fmt"
	"strings"

	"pokebattle-ai-api/internal/domain/entity"
)

// renderPokemon 渲染扁平投影为人类可读文本
func renderPokemon(p *entity.SimplifiedPokemon) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (#%d)\n\n", p.Name, p.ID)
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(p.Types, ", "))
	fmt.Fprintf(&b, "Abilities: %s\n", strings.Join(p.Abilities, ", "))
	fmt.Fprintf(&b, "Height: %d  Weight: %d  Base experience: %d\n\n",
		p.Height, p.Weight, p.BaseExperience)

	b.WriteString("Base stats:\n")
	fmt.Fprintf(&b, "  HP: %d\n", p.Stats.HP)
	fmt.Fprintf(&b, "  Attack: %d\n", p.Stats.Attack)
	fmt.Fprintf(&b, "  Defense: %d\n", p.Stats.Defense)
	fmt.Fprintf(&b, "  Sp. Atk: %d\n", p.Stats.SpecialAttack)
	fmt.Fprintf(&b, "  Sp. Def: %d\n", p.Stats.SpecialDefense)
	fmt.Fprintf(&b, "  Speed: %d\n", p.Stats.Speed)
	fmt.Fprintf(&b, "  Total: %d\n", p.Total)

	if p.IsLegendary {
		b.WriteString("\nLegendary Pokémon\n")
	}
	if p.IsMythical {
		b.WriteString("\nMythical Pokémon\n")
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "\nPokédex: %s\n", p.Description)
	}

	return b.String()
}

// renderPage 渲染分页名称列表
func renderPage(page *entity.PagedNames, offset int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pokemon list (%d total)\n\n", page.Count)
	for i, ref := range page.Results {
		fmt.Fprintf(&b, "%4d. %s\n", offset+i+1, ref.Name)
	}
	if len(page.Results) == 0 {
		b.WriteString("No entries in this page.\n")
	}

	return b.String()
}

// renderSearchResults 渲染搜索结果，空结果是正常返回而非错误
func renderSearchResults(query string, results []*entity.SimplifiedPokemon) string {
	if len(results) == 0 {
		return fmt.Sprintf("No Pokemon matched %q.\n", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d Pokemon matching %q:\n\n", len(results), query)
	for _, p := range results {
		fmt.Fprintf(&b, "- %s (#%d) [%s] BST %d\n",
			p.Name, p.ID, strings.Join(p.Types, "/"), p.Total)
	}
	return b.String()
}
