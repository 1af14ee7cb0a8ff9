// Package eino 提供 Eino 全局回调的可观测性支持
package eino

import (
	"context"
	"strings"
)

type llmCtxKey string

const (
	llmCtxKeyWorkflow llmCtxKey = "llm_workflow"
	llmCtxKeyProvider llmCtxKey = "llm_provider"
)

// WithWorkflowProvider 将工作流与提供商名称注入 context，供回调打标签
func WithWorkflowProvider(ctx context.Context, workflow, provider string) context.Context {
	if w := strings.TrimSpace(workflow); w != "" {
		ctx = context.WithValue(ctx, llmCtxKeyWorkflow, w)
	}
	if p := strings.TrimSpace(provider); p != "" {
		ctx = context.WithValue(ctx, llmCtxKeyProvider, p)
	}
	return ctx
}

// WorkflowFromContext 提取工作流名称
func WorkflowFromContext(ctx context.Context) string {
	s, ok := ctx.Value(llmCtxKeyWorkflow).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return strings.TrimSpace(s)
}

// ProviderFromContext 提取提供商名称
func ProviderFromContext(ctx context.Context) string {
	s, ok := ctx.Value(llmCtxKeyProvider).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return strings.TrimSpace(s)
}
