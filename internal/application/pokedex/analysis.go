package pokedex

import (
	"fmt"
	"strings"

	"pokebattle-ai-api/internal/domain/entity"
)

// AnalysisText 从种族值推导确定性的对战定位分析文本
// 不依赖生成模型，输出对相同输入恒定
func AnalysisText(p *entity.SimplifiedPokemon) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Competitive analysis for %s\n\n", p.Name)
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(p.Types, ", "))
	fmt.Fprintf(&b, "Abilities: %s\n", strings.Join(p.Abilities, ", "))
	fmt.Fprintf(&b, "Base stat total: %d\n\n", p.Total)

	fmt.Fprintf(&b, "Stat spread: HP %d / Atk %d / Def %d / SpA %d / SpD %d / Spe %d\n",
		p.Stats.HP, p.Stats.Attack, p.Stats.Defense,
		p.Stats.SpecialAttack, p.Stats.SpecialDefense, p.Stats.Speed)

	best, value := bestStat(p.Stats)
	fmt.Fprintf(&b, "Standout stat: %s (%d)\n", best, value)
	fmt.Fprintf(&b, "Suggested role: %s\n", suggestRole(p.Stats))

	if p.IsLegendary {
		b.WriteString("\nLegendary Pokémon: expect a base stat total well above the average.\n")
	}
	if p.IsMythical {
		b.WriteString("\nMythical Pokémon: rarely obtainable, usually event-exclusive.\n")
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "\nPokédex: %s\n", p.Description)
	}

	return b.String()
}

// bestStat 返回数值最高的种族值项，并列时按固定顺序取先出现者
func bestStat(s entity.BaseStats) (string, int) {
	type pair struct {
		label string
		value int
	}
	ordered := []pair{
		{"HP", s.HP},
		{"Attack", s.Attack},
		{"Defense", s.Defense},
		{"Sp. Atk", s.SpecialAttack},
		{"Sp. Def", s.SpecialDefense},
		{"Speed", s.Speed},
	}

	best := ordered[0]
	for _, p := range ordered[1:] {
		if p.value > best.value {
			best = p
		}
	}
	return best.label, best.value
}

// suggestRole 按种族值侧重给出粗粒度定位
func suggestRole(s entity.BaseStats) string {
	offense := s.Attack + s.SpecialAttack
	bulk := s.HP + s.Defense + s.SpecialDefense

	switch {
	case s.Speed >= 100 && offense >= bulk:
		return "fast sweeper"
	case bulk > offense+50:
		return "defensive wall"
	case offense > bulk+50:
		return "wallbreaker"
	default:
		return "balanced all-rounder"
	}
}
