// Package main 工具协议服务入口
// 协议流占用标准输出，所有日志写入标准错误
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"pokebattle-ai-api/internal/application/battle"
	"pokebattle-ai-api/internal/application/pokedex"
	"pokebattle-ai-api/internal/config"
	"pokebattle-ai-api/internal/infrastructure/cache"
	"pokebattle-ai-api/internal/infrastructure/llm"
	"pokebattle-ai-api/internal/infrastructure/pokeapi"
	mcpserver "pokebattle-ai-api/internal/interfaces/mcp"
	einoobs "pokebattle-ai-api/internal/observability/eino"
	"pokebattle-ai-api/pkg/logger"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 日志必须走 stderr，stdout 留给协议流
	logger.InitStderr(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting mcp-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// LLM API key 缺失属于致命配置错误
	if err := cfg.ValidateLLM(); err != nil {
		logger.Fatal(ctx, "llm configuration invalid", err)
	}

	// 初始化 Eino 全局 callbacks（指标/追踪/日志）
	einoobs.Init()

	// 组装依赖
	store := cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	catalog := pokeapi.NewClient(cfg.PokeAPI, store)
	dex := pokedex.NewService(catalog)
	simulator := battle.NewSimulator(llm.NewEinoFactory(cfg), cfg.LLM.DefaultProvider)

	srv := mcpserver.New(cfg.App.Name, Version, dex, simulator)

	log.Info("mcp server listening on stdio")
	if err := srv.ServeStdio(); err != nil {
		logger.Fatal(ctx, "mcp server error", err)
	}

	log.Info("mcp server exited")
}
