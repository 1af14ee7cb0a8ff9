package battle

import (
	"fmt"
	"strings"

	"pokebattle-ai-api/internal/domain/entity"
)

// section 解析器状态
type section int

const (
	sectionNone section = iota
	sectionWinner
	sectionLog
	sectionAnalysis
	sectionSummary
)

// parsedSections 解析后的段落累积结果
type parsedSections struct {
	winner   []string
	log      []string
	analysis []string
	summary  []string
}

// parseSections 对模型输出按行做状态机解析
// 标题行精确前缀匹配（区分大小写）切换状态并捕获同行剩余内容，
// 其余非空行累加到当前段落；段落顺序不作要求
func parseSections(raw string) parsedSections {
	var out parsedSections
	state := sectionNone

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		var rest string
		switch {
		case strings.HasPrefix(trimmed, headingWinner):
			state = sectionWinner
			rest = strings.TrimSpace(strings.TrimPrefix(trimmed, headingWinner))
		case strings.HasPrefix(trimmed, headingLog):
			state = sectionLog
			rest = strings.TrimSpace(strings.TrimPrefix(trimmed, headingLog))
		case strings.HasPrefix(trimmed, headingAnalysis):
			state = sectionAnalysis
			rest = strings.TrimSpace(strings.TrimPrefix(trimmed, headingAnalysis))
		case strings.HasPrefix(trimmed, headingSummary):
			state = sectionSummary
			rest = strings.TrimSpace(strings.TrimPrefix(trimmed, headingSummary))
		default:
			rest = trimmed
		}

		if rest == "" {
			continue
		}

		switch state {
		case sectionWinner:
			out.winner = append(out.winner, rest)
		case sectionLog:
			out.log = append(out.log, rest)
		case sectionAnalysis:
			out.analysis = append(out.analysis, rest)
		case sectionSummary:
			out.summary = append(out.summary, rest)
		}
	}

	return out
}

// outcomeFromText 从模型输出构造对战结果
// 缺失的字段逐项兜底：胜者按种族值总和判定（平局归第一个参数），
// 对战记录退化为原始文本单条目，分析与总结使用固定模板。
// 返回值第二项表示是否有字段走了兜底
func outcomeFromText(raw string, p1, p2 *entity.SimplifiedPokemon) (*entity.BattleOutcome, bool) {
	parsed := parseSections(raw)
	fellBack := false

	winner, loser := resolveWinner(parsed.winner, p1, p2)
	if winner == "" {
		winner, loser = decideByTotals(p1, p2)
		fellBack = true
	}

	log := parsed.log
	if len(log) == 0 {
		log = []string{strings.TrimSpace(raw)}
		fellBack = true
	}

	analysis := strings.Join(parsed.analysis, " ")
	if analysis == "" {
		analysis = fmt.Sprintf("%s's superior stats and abilities carried the battle.", winner)
		fellBack = true
	}

	summary := strings.Join(parsed.summary, " ")
	if summary == "" {
		summary = fmt.Sprintf("%s emerged victorious in a hard-fought battle.", winner)
		fellBack = true
	}

	return &entity.BattleOutcome{
		Winner:    winner,
		Loser:     loser,
		BattleLog: log,
		Analysis:  analysis,
		Summary:   summary,
	}, fellBack
}

// resolveWinner 将模型声明的胜者名归一到两个参战者之一
// 与第一个参战者忽略大小写比较来确定败者
func resolveWinner(declared []string, p1, p2 *entity.SimplifiedPokemon) (string, string) {
	name := strings.Trim(strings.Join(declared, " "), "* ")
	if name == "" {
		return "", ""
	}
	if strings.EqualFold(name, p1.Name) {
		return p1.Name, p2.Name
	}
	return p2.Name, p1.Name
}
