package pokedex

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"pokebattle-ai-api/internal/domain/entity"
	apperrors "pokebattle-ai-api/pkg/errors"
)

// 分页与搜索的边界参数
const (
	ListLimitDefault = 20
	ListLimitMin     = 1
	ListLimitMax     = 100

	SearchQueryMinLen = 2
)

// Catalog 定义用例层对目录客户端的最小依赖
type Catalog interface {
	GetComplete(ctx context.Context, id string) (*entity.SimplifiedPokemon, error)
	ListPokemon(ctx context.Context, limit, offset int) (*entity.PagedNames, error)
	Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error)
}

// Service 图鉴查询服务
type Service struct {
	catalog Catalog
}

// NewService 创建图鉴查询服务
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// GetPokemon 校验标识符并获取扁平投影
func (s *Service) GetPokemon(ctx context.Context, raw string) (*entity.SimplifiedPokemon, error) {
	id, err := ValidateIdentifier(raw)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetComplete(ctx, id)
}

// GetPair 并发获取两只宝可梦，任一失败整体失败
func (s *Service) GetPair(ctx context.Context, raw1, raw2 string) (*entity.SimplifiedPokemon, *entity.SimplifiedPokemon, error) {
	id1, err := ValidateIdentifier(raw1)
	if err != nil {
		return nil, nil, err
	}
	id2, err := ValidateIdentifier(raw2)
	if err != nil {
		return nil, nil, err
	}

	var p1, p2 *entity.SimplifiedPokemon
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p1, err = s.catalog.GetComplete(gctx, id1)
		return err
	})
	g.Go(func() error {
		var err error
		p2, err = s.catalog.GetComplete(gctx, id2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

// List 获取分页名称列表，limit 钳制到 [1,100]，0 取默认值 20
// 负偏移量按原样透传，由目录服务自行处理
func (s *Service) List(ctx context.Context, limit, offset int) (*entity.PagedNames, error) {
	return s.catalog.ListPokemon(ctx, ClampLimit(limit), offset)
}

// ClampLimit 钳制分页大小
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return ListLimitDefault
	case limit < ListLimitMin:
		return ListLimitMin
	case limit > ListLimitMax:
		return ListLimitMax
	default:
		return limit
	}
}

// Search 按名称搜索，过短的查询直接拒绝
func (s *Service) Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error) {
	if len(strings.TrimSpace(query)) < SearchQueryMinLen {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "search query too short").
			WithDetail("query must be at least 2 characters")
	}
	return s.catalog.Search(ctx, query)
}

// Analyze 获取宝可梦并生成确定性的对战定位分析
func (s *Service) Analyze(ctx context.Context, raw string) (*entity.SimplifiedPokemon, string, error) {
	p, err := s.GetPokemon(ctx, raw)
	if err != nil {
		return nil, "", err
	}
	return p, AnalysisText(p), nil
}
