// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pokebattle-ai-api/internal/domain/entity"
	"pokebattle-ai-api/internal/interfaces/http/dto"
)

// PokedexReader 图鉴查询用例的只读视图
type PokedexReader interface {
	GetPokemon(ctx context.Context, raw string) (*entity.SimplifiedPokemon, error)
	GetPair(ctx context.Context, raw1, raw2 string) (*entity.SimplifiedPokemon, *entity.SimplifiedPokemon, error)
	List(ctx context.Context, limit, offset int) (*entity.PagedNames, error)
	Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error)
}

// PokemonHandler 宝可梦查询处理器
type PokemonHandler struct {
	pokedex PokedexReader
}

// NewPokemonHandler 创建宝可梦查询处理器
func NewPokemonHandler(pokedex PokedexReader) *PokemonHandler {
	return &PokemonHandler{pokedex: pokedex}
}

// Get 按名称或编号获取扁平投影
// GET /api/pokemon/:name
func (h *PokemonHandler) Get(c *gin.Context) {
	p, err := h.pokedex.GetPokemon(c.Request.Context(), c.Param("name"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List 分页获取名称列表
// GET /api/pokemon?limit=&offset=
func (h *PokemonHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.pokedex.List(c.Request.Context(), limit, offset)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Search 按名称搜索
// GET /api/pokemon/search?q=
func (h *PokemonHandler) Search(c *gin.Context) {
	results, err := h.pokedex.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
