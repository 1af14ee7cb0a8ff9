package battle

import (
	"fmt"
	"strings"

	"pokebattle-ai-api/internal/domain/entity"
)

// decideByTotals 按种族值总和判定胜负
// 严格大于才获胜，平局归第一个参数（明确的决策策略，非缺陷）
func decideByTotals(p1, p2 *entity.SimplifiedPokemon) (winner, loser string) {
	if p2.Total > p1.Total {
		return p2.Name, p1.Name
	}
	return p1.Name, p2.Name
}

// StatisticalOutcome 模型调用失败时的确定性兜底结果
// 合成五回合对战记录，分析列出胜者占优的种族值项，
// 并附带降级见证供调用方透出非致命告警
func StatisticalOutcome(p1, p2 *entity.SimplifiedPokemon, reason string) *entity.BattleOutcome {
	winner, loser := decideByTotals(p1, p2)

	w, l := p1, p2
	if winner == p2.Name {
		w, l = p2, p1
	}

	return &entity.BattleOutcome{
		Winner:    winner,
		Loser:     loser,
		BattleLog: synthesizeLog(w, l),
		Analysis:  statAnalysis(w, l),
		Summary:   fmt.Sprintf("Based on base stat totals, %s defeats %s.", winner, loser),
		Fallback: entity.FallbackWitness{
			Used:   true,
			Reason: reason,
		},
	}
}

// synthesizeLog 合成固定五回合的对战记录
func synthesizeLog(w, l *entity.SimplifiedPokemon) []string {
	wType := primaryType(w)
	lType := primaryType(l)

	return []string{
		fmt.Sprintf("Turn 1: %s sizes up %s as both Pokémon enter the arena.", w.Name, l.Name),
		fmt.Sprintf("Turn 2: %s opens with a powerful %s-type attack.", w.Name, wType),
		fmt.Sprintf("Turn 3: %s counters with a %s-type move, but %s holds firm.", l.Name, lType, w.Name),
		fmt.Sprintf("Turn 4: %s presses the advantage with relentless attacks.", w.Name),
		fmt.Sprintf("Turn 5: %s lands the finishing blow and %s faints.", w.Name, l.Name),
	}
}

// statAnalysis 列出胜者严格占优的种族值项
func statAnalysis(w, l *entity.SimplifiedPokemon) string {
	type statPair struct {
		label string
		w, l  int
	}
	pairs := []statPair{
		{"HP", w.Stats.HP, l.Stats.HP},
		{"Attack", w.Stats.Attack, l.Stats.Attack},
		{"Defense", w.Stats.Defense, l.Stats.Defense},
		{"Sp. Atk", w.Stats.SpecialAttack, l.Stats.SpecialAttack},
		{"Sp. Def", w.Stats.SpecialDefense, l.Stats.SpecialDefense},
		{"Speed", w.Stats.Speed, l.Stats.Speed},
	}

	var favored []string
	for _, p := range pairs {
		if p.w > p.l {
			favored = append(favored, fmt.Sprintf("%s (%d vs %d)", p.label, p.w, p.l))
		}
	}

	base := fmt.Sprintf("%s wins on base stat totals, %d to %d.", w.Name, w.Total, l.Total)
	if len(favored) == 0 {
		return base
	}
	return fmt.Sprintf("%s Favorable stats: %s.", base, strings.Join(favored, ", "))
}

// primaryType 返回首个属性，缺失时用 normal
func primaryType(p *entity.SimplifiedPokemon) string {
	if len(p.Types) > 0 {
		return p.Types[0]
	}
	return "normal"
}
