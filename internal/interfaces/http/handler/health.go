package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	pokedex PokedexReader
	version string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(pokedex PokedexReader, version string) *HealthHandler {
	return &HealthHandler{pokedex: pokedex, version: version}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口，探测目录服务连通性
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"catalog": {Status: "unknown"},
	}
	ready := true

	if h == nil || h.pokedex == nil {
		checks["catalog"].Status = "missing"
		checks["catalog"].Error = "catalog client not configured"
		ready = false
	} else {
		start := time.Now()
		_, err := h.pokedex.List(ctx, 1, 0)
		checks["catalog"].LatencyMs = time.Since(start).Milliseconds()
		if err != nil {
			checks["catalog"].Status = "error"
			checks["catalog"].Error = err.Error()
			ready = false
		} else {
			checks["catalog"].Status = "ok"
		}
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Test 面向客户端的存活探针
// GET /api/test
func (h *HealthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "pokebattle api is running",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
