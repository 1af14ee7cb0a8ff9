// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pokebattle-ai-api/pkg/errors"
)

// ErrorResponse 4xx 错误响应结构
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ServerErrorResponse 5xx 错误响应结构，附带排障提示
type ServerErrorResponse struct {
	Error           string   `json:"error"`
	Details         string   `json:"details,omitempty"`
	Timestamp       string   `json:"timestamp"`
	Troubleshooting []string `json:"troubleshooting,omitempty"`
}

// Fail 按错误链中的 AppError 选择状态码与响应体
// 4xx 返回 {error, details}，5xx 额外带时间戳与排障提示
func Fail(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.CodeInternalError, "internal server error")
	}

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if status < http.StatusInternalServerError {
		c.JSON(status, ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Detail,
		})
		return
	}

	c.JSON(status, ServerErrorResponse{
		Error:           appErr.Message,
		Details:         appErr.Detail,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Troubleshooting: troubleshootingFor(appErr.Code),
	})
}

// troubleshootingFor 按错误码给出用户可执行的排查建议
func troubleshootingFor(code apperrors.ErrorCode) []string {
	switch code {
	case apperrors.CodeCatalogError:
		return []string{
			"Check that the catalog service is reachable from this host",
			"Verify POKEAPI_BASE_URL if you overrode the default",
			"Retry in a few seconds; transient upstream errors resolve quickly",
		}
	case apperrors.CodeLLMCallFailed, apperrors.CodeLLMProviderError:
		return []string{
			"Verify OPENAI_API_KEY is set and has remaining quota",
			"Battles still complete via the statistical fallback",
		}
	default:
		return []string{"Retry the request; contact the operator if it persists"}
	}
}
