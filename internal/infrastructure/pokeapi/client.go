// Package pokeapi 提供宝可梦图鉴目录服务客户端
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"pokebattle-ai-api/internal/config"
	"pokebattle-ai-api/internal/domain/entity"
	"pokebattle-ai-api/internal/infrastructure/cache"
	apperrors "pokebattle-ai-api/pkg/errors"
	"pokebattle-ai-api/pkg/logger"
	"pokebattle-ai-api/pkg/metrics"
)

// searchFetchLimit 模糊搜索时最多并发获取的详情数
const searchFetchLimit = 5

// searchPageSize 模糊搜索回退路径拉取的名称页大小
const searchPageSize = 2000

// Client 目录服务客户端
// 所有读路径均经过进程内缓存（read-through），
// singleflight 防止同一端点的并发穿透
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	cache     *cache.Cache
	group     singleflight.Group
}

// NewClient 创建目录服务客户端
func NewClient(cfg config.PokeAPIConfig, store *cache.Cache) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout},
		cache:     store,
	}
}

// GetPokemon 获取原始宝可梦记录
func (c *Client) GetPokemon(ctx context.Context, id string) (*entity.PokemonRecord, error) {
	var rec entity.PokemonRecord
	if err := c.getJSON(ctx, "pokemon", "/pokemon/"+id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetSpecies 获取原始物种记录
func (c *Client) GetSpecies(ctx context.Context, id string) (*entity.SpeciesRecord, error) {
	var rec entity.SpeciesRecord
	if err := c.getJSON(ctx, "species", "/pokemon-species/"+id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetComplete 并发获取宝可梦与物种记录并合并为扁平投影
// 任意一路失败整体失败
func (c *Client) GetComplete(ctx context.Context, id string) (*entity.SimplifiedPokemon, error) {
	var (
		rec *entity.PokemonRecord
		sp  *entity.SpeciesRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = c.GetPokemon(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		sp, err = c.GetSpecies(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Simplify(rec, sp), nil
}

// ListPokemon 获取分页名称列表，参数原样透传
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*entity.PagedNames, error) {
	var page entity.PagedNames
	path := fmt.Sprintf("/pokemon?limit=%d&offset=%d", limit, offset)
	if err := c.getJSON(ctx, "list", path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Search 按标识符搜索宝可梦
// 先尝试精确获取；失败后拉取大页名称做子串匹配，
// 最多取前 searchFetchLimit 个匹配并发获取详情。
// 无匹配返回空列表而非错误
func (c *Client) Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	if exact, err := c.GetComplete(ctx, q); err == nil {
		return []*entity.SimplifiedPokemon{exact}, nil
	} else {
		logger.Debug(ctx, "exact lookup failed, falling back to substring search",
			"query", q, "reason", err.Error())
	}

	page, err := c.ListPokemon(ctx, searchPageSize, 0)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCatalogError, "search fallback list fetch failed")
	}

	var names []string
	for _, r := range page.Results {
		if strings.Contains(strings.ToLower(r.Name), q) {
			names = append(names, r.Name)
			if len(names) == searchFetchLimit {
				break
			}
		}
	}
	if len(names) == 0 {
		return []*entity.SimplifiedPokemon{}, nil
	}

	results := make([]*entity.SimplifiedPokemon, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			p, err := c.GetComplete(gctx, name)
			if err != nil {
				return err
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// getJSON 带缓存的 GET 请求
// 命中有效缓存直接反序列化返回；未命中或过期触发实际请求并覆盖缓存条目
func (c *Client) getJSON(ctx context.Context, kind, path string, out any) error {
	endpoint := c.baseURL + path

	if c.cache != nil {
		if payload, ok := c.cache.Get(endpoint); ok {
			return json.Unmarshal(payload, out)
		}
	}

	v, err, _ := c.group.Do(endpoint, func() (any, error) {
		payload, err := c.fetch(ctx, kind, endpoint)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Put(endpoint, payload)
		}
		return payload, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(v.([]byte), out)
}

// fetch 发起实际 HTTP 请求，非 2xx 一律转为应用错误，不自动重试
func (c *Client) fetch(ctx context.Context, kind, endpoint string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCatalogError, "failed to build catalog request").
			WithDetail(endpoint)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(kind, "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeCatalogError, "catalog request failed").
			WithDetail(endpoint)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestsTotal.WithLabelValues(kind, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	metrics.CatalogRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code := apperrors.CodeCatalogError
		if resp.StatusCode == http.StatusNotFound {
			code = apperrors.CodePokemonNotFound
		}
		return nil, apperrors.New(code, fmt.Sprintf("catalog returned status %d", resp.StatusCode)).
			WithDetail(endpoint)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCatalogError, "failed to read catalog response").
			WithDetail(endpoint)
	}
	return payload, nil
}
