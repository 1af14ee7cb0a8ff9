// Package mcp 提供工具协议边界
// 与 HTTP 边界共用同一套用例层，仅负责参数提取与文本渲染
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"pokebattle-ai-api/internal/domain/entity"
)

// PokedexReader 图鉴查询用例的只读视图
type PokedexReader interface {
	GetPokemon(ctx context.Context, raw string) (*entity.SimplifiedPokemon, error)
	GetPair(ctx context.Context, raw1, raw2 string) (*entity.SimplifiedPokemon, *entity.SimplifiedPokemon, error)
	List(ctx context.Context, limit, offset int) (*entity.PagedNames, error)
	Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error)
	Analyze(ctx context.Context, raw string) (*entity.SimplifiedPokemon, string, error)
}

// BattleRunner 对战模拟用例
type BattleRunner interface {
	Simulate(ctx context.Context, p1, p2 *entity.SimplifiedPokemon) *entity.BattleOutcome
}

// Server 工具协议服务器
type Server struct {
	inner     *server.MCPServer
	pokedex   PokedexReader
	simulator BattleRunner
}

// New 创建工具协议服务器并注册全部工具与资源
func New(name, version string, pokedex PokedexReader, simulator BattleRunner) *Server {
	inner := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	s := &Server{
		inner:     inner,
		pokedex:   pokedex,
		simulator: simulator,
	}

	s.registerTools()
	s.registerResources()

	return s
}

// ServeStdio 在标准输入输出上运行协议循环，阻塞直到对端断开
// 协议流占用 stdout，日志必须走 stderr
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.inner)
}
