// Package main HTTP API 服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pokebattle-ai-api/internal/application/battle"
	"pokebattle-ai-api/internal/application/pokedex"
	"pokebattle-ai-api/internal/config"
	"pokebattle-ai-api/internal/infrastructure/cache"
	"pokebattle-ai-api/internal/infrastructure/llm"
	"pokebattle-ai-api/internal/infrastructure/pokeapi"
	"pokebattle-ai-api/internal/interfaces/http/handler"
	"pokebattle-ai-api/internal/interfaces/http/router"
	einoobs "pokebattle-ai-api/internal/observability/eino"
	"pokebattle-ai-api/pkg/logger"
	"pokebattle-ai-api/pkg/tracer"
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
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting api-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// LLM API key 缺失属于致命配置错误
	if err := cfg.ValidateLLM(); err != nil {
		logger.Fatal(ctx, "llm configuration invalid", err)
	}

	// 初始化追踪
	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 初始化 Eino 全局 callbacks（指标/追踪/日志）
	einoobs.Init()

	// 组装依赖
	store := cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	catalog := pokeapi.NewClient(cfg.PokeAPI, store)
	dex := pokedex.NewService(catalog)
	simulator := battle.NewSimulator(llm.NewEinoFactory(cfg), cfg.LLM.DefaultProvider)

	r := router.New(cfg, router.Handlers{
		Health:  handler.NewHealthHandler(dex, Version),
		Pokemon: handler.NewPokemonHandler(dex),
		Battle:  handler.NewBattleHandler(dex, simulator),
	})

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
