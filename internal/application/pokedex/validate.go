// Package pokedex 提供图鉴查询用例：标识符校验、详情获取、分页列表与搜索
// HTTP 与工具协议两个边界共用这一层
package pokedex

import (
	"regexp"
	"strings"

	apperrors "pokebattle-ai-api/pkg/errors"
)

var (
	numericIdentifier = regexp.MustCompile(`^[0-9]+$`)
	alphaIdentifier   = regexp.MustCompile(`^[a-z-]+$`)
)

// SanitizeIdentifier 清洗用户输入的标识符
// 去除首尾空白、转小写、滤除 [a-z0-9-] 之外的字符；
// 非拉丁输入会被滤成空串进而被拒绝
func SanitizeIdentifier(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateIdentifier 校验并返回清洗后的标识符
// 清洗结果必须非空，且为纯数字或纯字母（可含连字符）
func ValidateIdentifier(raw string) (string, error) {
	id := SanitizeIdentifier(raw)
	if id == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "invalid pokemon identifier").
			WithDetail("identifier is empty after sanitization")
	}
	if !numericIdentifier.MatchString(id) && !alphaIdentifier.MatchString(id) {
		return "", apperrors.New(apperrors.CodeInvalidParam, "invalid pokemon identifier").
			WithDetail("identifier must be a name or a numeric id: " + id)
	}
	return id, nil
}
