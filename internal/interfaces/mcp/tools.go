package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"pokebattle-ai-api/internal/application/battle"
	"pokebattle-ai-api/internal/application/pokedex"
	"pokebattle-ai-api/pkg/logger"
)

// registerTools 注册五个工具操作
// 校验与获取失败一律作为错误标记的文本结果返回，不中断协议会话
func (s *Server) registerTools() {
	s.inner.AddTool(mcp.NewTool("get_pokemon_data",
		mcp.WithDescription("Get detailed data for a Pokemon by name or numeric id: stats, types, abilities and Pokedex description."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Pokemon name (e.g. pikachu) or numeric id (e.g. 25)"),
		),
	), s.handleGetPokemonData)

	s.inner.AddTool(mcp.NewTool("battle_simulation",
		mcp.WithDescription("Simulate a battle between two Pokemon and narrate the result. Falls back to a stat-based outcome when the generative model is unavailable."),
		mcp.WithString("pokemon1",
			mcp.Required(),
			mcp.Description("First contestant, name or numeric id"),
		),
		mcp.WithString("pokemon2",
			mcp.Required(),
			mcp.Description("Second contestant, name or numeric id"),
		),
	), s.handleBattleSimulation)

	s.inner.AddTool(mcp.NewTool("get_pokemon_list",
		mcp.WithDescription("List Pokemon names with pagination."),
		mcp.WithNumber("limit",
			mcp.Description("Page size, clamped to [1,100], default 20"),
		),
		mcp.WithNumber("offset",
			mcp.Description("Number of entries to skip, default 0"),
		),
	), s.handleGetPokemonList)

	s.inner.AddTool(mcp.NewTool("search_pokemon",
		mcp.WithDescription("Search Pokemon by name, exact match first then substring."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term, at least 2 characters"),
		),
	), s.handleSearchPokemon)

	s.inner.AddTool(mcp.NewTool("analyze_pokemon",
		mcp.WithDescription("Produce a deterministic competitive analysis of a Pokemon from its base stats."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Pokemon name or numeric id"),
		),
	), s.handleAnalyzePokemon)
}

func (s *Server) handleGetPokemonData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.pokedex.GetPokemon(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderPokemon(p)), nil
}

func (s *Server) handleBattleSimulation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name1, err := req.RequireString("pokemon1")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name2, err := req.RequireString("pokemon2")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p1, p2, err := s.pokedex.GetPair(ctx, name1, name2)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome := s.simulator.Simulate(ctx, p1, p2)
	if outcome.Fallback.Used {
		logger.Warn(ctx, "battle resolved by statistical fallback",
			"pokemon1", p1.Name,
			"pokemon2", p2.Name,
			"reason", outcome.Fallback.Reason,
		)
	}

	report := battle.NewBattleReport(outcome, p1, p2)
	return mcp.NewToolResultText(report.RenderText()), nil
}

func (s *Server) handleGetPokemonList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", pokedex.ListLimitDefault)
	offset := req.GetInt("offset", 0)

	page, err := s.pokedex.List(ctx, limit, offset)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderPage(page, offset)), nil
}

func (s *Server) handleSearchPokemon(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results, err := s.pokedex.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderSearchResults(query, results)), nil
}

func (s *Server) handleAnalyzePokemon(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	_, analysis, err := s.pokedex.Analyze(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(analysis), nil
}
