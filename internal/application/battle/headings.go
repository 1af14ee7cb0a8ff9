// Package battle 实现对战结果派生管线：
// 构建提示词 -> 调用生成模型 -> 解析自由文本 -> 统计兜底
package battle

// 四个段落标题是提示词与解析器之间的线上契约，
// 修改任何一个都必须同步调整 templates/ 下的提示词文本
const (
	headingWinner   = "**WINNER:**"
	headingLog      = "**BATTLE LOG:**"
	headingAnalysis = "**STRATEGIC ANALYSIS:**"
	headingSummary  = "**SUMMARY:**"
)
