package pokeapi

import (
	"sort"
	"strings"
	"unicode"

	"pokebattle-ai-api/internal/domain/entity"
)

// noDescription 没有匹配语言描述时的固定文案
const noDescription = "No description available."

// descriptionLanguage 选取描述文本的语言
const descriptionLanguage = "en"

// Simplify 将宝可梦与物种两条原始记录合并为扁平投影
// Total 现场计算；缺失的种族值按 0 处理，绝不因缺项失败
func Simplify(rec *entity.PokemonRecord, sp *entity.SpeciesRecord) *entity.SimplifiedPokemon {
	stats := extractStats(rec.Stats)

	p := &entity.SimplifiedPokemon{
		ID:             rec.ID,
		Name:           rec.Name,
		Height:         rec.Height,
		Weight:         rec.Weight,
		BaseExperience: rec.BaseExperience,
		Stats:          stats,
		Total:          stats.Sum(),
		Types:          typeNames(rec.Types),
		Abilities:      abilityNames(rec.Abilities),
	}

	if sp != nil {
		p.IsLegendary = sp.IsLegendary
		p.IsMythical = sp.IsMythical
		p.Description = pickDescription(sp.FlavorTextEntries)
	} else {
		p.Description = noDescription
	}

	return p
}

// extractStats 按名称提取六项种族值，未知名称忽略
func extractStats(values []entity.StatValue) entity.BaseStats {
	var s entity.BaseStats
	for _, v := range values {
		switch v.Stat.Name {
		case "hp":
			s.HP = v.BaseStat
		case "attack":
			s.Attack = v.BaseStat
		case "defense":
			s.Defense = v.BaseStat
		case "special-attack":
			s.SpecialAttack = v.BaseStat
		case "special-defense":
			s.SpecialDefense = v.BaseStat
		case "speed":
			s.Speed = v.BaseStat
		}
	}
	return s
}

// typeNames 按槽位升序返回去重后的属性名
func typeNames(slots []entity.TypeSlot) []string {
	ordered := make([]entity.TypeSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Slot < ordered[j].Slot })

	seen := make(map[string]struct{}, len(ordered))
	names := make([]string, 0, len(ordered))
	for _, t := range ordered {
		if _, ok := seen[t.Type.Name]; ok {
			continue
		}
		seen[t.Type.Name] = struct{}{}
		names = append(names, t.Type.Name)
	}
	return names
}

// abilityNames 按槽位升序返回去重后的特性名
func abilityNames(slots []entity.AbilitySlot) []string {
	ordered := make([]entity.AbilitySlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Slot < ordered[j].Slot })

	seen := make(map[string]struct{}, len(ordered))
	names := make([]string, 0, len(ordered))
	for _, a := range ordered {
		if _, ok := seen[a.Ability.Name]; ok {
			continue
		}
		seen[a.Ability.Name] = struct{}{}
		names = append(names, a.Ability.Name)
	}
	return names
}

// pickDescription 选取第一条匹配语言的描述，清理控制字符并压缩空白
func pickDescription(entries []entity.FlavorText) string {
	for _, e := range entries {
		if e.Language.Name != descriptionLanguage {
			continue
		}
		if cleaned := cleanText(e.FlavorText); cleaned != "" {
			return cleaned
		}
	}
	return noDescription
}

// cleanText 目录服务的描述夹杂换页符等控制字符，统一替换为空格后压缩
func cleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
