package battle

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"pokebattle-ai-api/internal/domain/entity"
)

//go:embed templates/*.txt
var templatesFS embed.FS

var (
	tplOnce sync.Once
	tpl     einoprompt.ChatTemplate
	tplErr  error
)

// battleTemplate 惰性构建对战提示词模板
func battleTemplate() (einoprompt.ChatTemplate, error) {
	tplOnce.Do(func() {
		system, err := readEmbeddedText("templates/system.txt")
		if err != nil {
			tplErr = err
			return
		}
		user, err := readEmbeddedText("templates/user.txt")
		if err != nil {
			tplErr = err
			return
		}
		tpl = einoprompt.FromMessages(
			schema.FString,
			schema.SystemMessage(system),
			schema.UserMessage(user),
		)
	})
	return tpl, tplErr
}

func readEmbeddedText(path string) (string, error) {
	raw, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", fmt.Errorf("prompt template %s is empty", path)
	}
	return text, nil
}

// formatBattleMessages 渲染对战提示词
func formatBattleMessages(ctx context.Context, p1, p2 *entity.SimplifiedPokemon) ([]*schema.Message, error) {
	t, err := battleTemplate()
	if err != nil {
		return nil, err
	}
	return t.Format(ctx, map[string]any{
		"pokemon1_block": statBlock(p1),
		"pokemon2_block": statBlock(p2),
	})
}

// statBlock 将扁平投影渲染为提示词中的文本块
func statBlock(p *entity.SimplifiedPokemon) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(p.Types, ", "))
	fmt.Fprintf(&b, "Abilities: %s\n", strings.Join(p.Abilities, ", "))
	fmt.Fprintf(&b, "Stats: HP %d, Attack %d, Defense %d, Sp. Atk %d, Sp. Def %d, Speed %d (total %d)\n",
		p.Stats.HP, p.Stats.Attack, p.Stats.Defense,
		p.Stats.SpecialAttack, p.Stats.SpecialDefense, p.Stats.Speed, p.Total)
	fmt.Fprintf(&b, "Height: %d, Weight: %d, Base experience: %d\n", p.Height, p.Weight, p.BaseExperience)
	if p.IsLegendary {
		b.WriteString("Rarity: legendary\n")
	}
	if p.IsMythical {
		b.WriteString("Rarity: mythical\n")
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
