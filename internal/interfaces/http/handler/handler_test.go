package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebattle-ai-api/internal/application/pokedex"
	"pokebattle-ai-api/internal/domain/entity"
	apperrors "pokebattle-ai-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPokedex 以预设数据实现 PokedexReader
type stubPokedex struct {
	pokemon map[string]*entity.SimplifiedPokemon
	listErr error
}

func (s *stubPokedex) GetPokemon(ctx context.Context, raw string) (*entity.SimplifiedPokemon, error) {
	id, err := pokedex.ValidateIdentifier(raw)
	if err != nil {
		return nil, err
	}
	if p, ok := s.pokemon[id]; ok {
		return p, nil
	}
	return nil, apperrors.New(apperrors.CodePokemonNotFound, "pokemon not found").
		WithDetail("no pokemon named " + id)
}

func (s *stubPokedex) GetPair(ctx context.Context, raw1, raw2 string) (*entity.SimplifiedPokemon, *entity.SimplifiedPokemon, error) {
	p1, err := s.GetPokemon(ctx, raw1)
	if err != nil {
		return nil, nil, err
	}
	p2, err := s.GetPokemon(ctx, raw2)
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

func (s *stubPokedex) List(ctx context.Context, limit, offset int) (*entity.PagedNames, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &entity.PagedNames{Count: 1302}, nil
}

func (s *stubPokedex) Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error) {
	if len(strings.TrimSpace(query)) < pokedex.SearchQueryMinLen {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "search query too short")
	}
	var out []*entity.SimplifiedPokemon
	for _, p := range s.pokemon {
		if strings.Contains(p.Name, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

// stubRunner 返回固定对战结果
type stubRunner struct {
	outcome *entity.BattleOutcome
}

func (s *stubRunner) Simulate(ctx context.Context, p1, p2 *entity.SimplifiedPokemon) *entity.BattleOutcome {
	return s.outcome
}

func fixturePokedex() *stubPokedex {
	return &stubPokedex{pokemon: map[string]*entity.SimplifiedPokemon{
		"pikachu": {
			ID:    25,
			Name:  "pikachu",
			Types: []string{"electric"},
			Stats: entity.BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
			Total: 320,
		},
		"onix": {
			ID:    95,
			Name:  "onix",
			Types: []string{"rock", "ground"},
			Stats: entity.BaseStats{HP: 35, Attack: 45, Defense: 160, SpecialAttack: 30, SpecialDefense: 45, Speed: 70},
			Total: 385,
		},
	}}
}

func newTestRouter(pd PokedexReader, runner BattleRunner) *gin.Engine {
	engine := gin.New()
	ph := NewPokemonHandler(pd)
	bh := NewBattleHandler(pd, runner)
	hh := NewHealthHandler(pd, "test")

	engine.GET("/api/test", hh.Test)
	engine.GET("/api/pokemon", ph.List)
	engine.GET("/api/pokemon/search", ph.Search)
	engine.GET("/api/pokemon/:name", ph.Get)
	engine.POST("/api/battle", bh.Simulate)
	engine.GET("/ready", hh.Ready)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGetPokemonOK(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodGet, "/api/pokemon/Pikachu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.SimplifiedPokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "pikachu", got.Name)
	assert.Equal(t, 320, got.Total)
}

func TestGetPokemonNotFound(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodGet, "/api/pokemon/missingno", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body["details"], "missingno")
}

func TestGetPokemonInvalidIdentifier(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodGet, "/api/pokemon/%20%20%20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchShortQueryRejected(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodGet, "/api/pokemon/search?q=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBattleSimulateOK(t *testing.T) {
	outcome := &entity.BattleOutcome{
		Winner:    "pikachu",
		Loser:     "onix",
		BattleLog: []string{"turn 1", "turn 2", "turn 3", "turn 4", "turn 5"},
		Analysis:  "speed decides it",
		Summary:   "pikachu outpaces onix",
	}
	engine := newTestRouter(fixturePokedex(), &stubRunner{outcome: outcome})

	w := doRequest(t, engine, http.MethodPost, "/api/battle",
		`{"pokemon1":{"name":"pikachu"},"pokemon2":{"name":"onix"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Winner    string   `json:"winner"`
		BattleLog []string `json:"battleLog"`
		Metadata  struct {
			UsingFallback bool   `json:"usingFallback"`
			Pokemon1      string `json:"pokemon1"`
			Pokemon2      string `json:"pokemon2"`
			ServerStatus  string `json:"serverStatus"`
			Timestamp     string `json:"timestamp"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pikachu", body.Winner)
	assert.Len(t, body.BattleLog, 5)
	assert.False(t, body.Metadata.UsingFallback)
	assert.Equal(t, "pikachu", body.Metadata.Pokemon1)
	assert.Equal(t, "onix", body.Metadata.Pokemon2)
	assert.Equal(t, "operational", body.Metadata.ServerStatus)
	assert.NotEmpty(t, body.Metadata.Timestamp)
}

func TestBattleSimulateFallbackMetadata(t *testing.T) {
	outcome := &entity.BattleOutcome{
		Winner:    "onix",
		Loser:     "pikachu",
		BattleLog: []string{"t1", "t2", "t3", "t4", "t5"},
		Analysis:  "totals favor onix",
		Summary:   "stat-based result",
		Fallback:  entity.FallbackWitness{Used: true, Reason: "model invocation failed: 429"},
	}
	engine := newTestRouter(fixturePokedex(), &stubRunner{outcome: outcome})

	w := doRequest(t, engine, http.MethodPost, "/api/battle",
		`{"pokemon1":{"name":"pikachu"},"pokemon2":{"name":"onix"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Metadata struct {
			UsingFallback bool   `json:"usingFallback"`
			ServerStatus  string `json:"serverStatus"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Metadata.UsingFallback)
	assert.Contains(t, body.Metadata.ServerStatus, "429")
}

func TestBattleSimulateBadBody(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodPost, "/api/battle", `{"pokemon1":{"name":"pikachu"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBattleSimulateUnknownContestant(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodPost, "/api/battle",
		`{"pokemon1":{"name":"pikachu"},"pokemon2":{"name":"missingno"}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadyReportsCatalogFailure(t *testing.T) {
	pd := fixturePokedex()
	pd.listErr = apperrors.New(apperrors.CodeCatalogError, "catalog unreachable")
	engine := newTestRouter(pd, &stubRunner{})

	w := doRequest(t, engine, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not_ready")
}

func TestAPITestLiveness(t *testing.T) {
	engine := newTestRouter(fixturePokedex(), &stubRunner{})

	w := doRequest(t, engine, http.MethodGet, "/api/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
