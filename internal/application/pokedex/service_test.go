package pokedex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebattle-ai-api/internal/domain/entity"
	apperrors "pokebattle-ai-api/pkg/errors"
)

// fakeCatalog 记录调用参数的目录桩
type fakeCatalog struct {
	gotLimit  int
	gotOffset int
	gotQuery  string
	pokemon   map[string]*entity.SimplifiedPokemon
}

func (f *fakeCatalog) GetComplete(ctx context.Context, id string) (*entity.SimplifiedPokemon, error) {
	if p, ok := f.pokemon[id]; ok {
		return p, nil
	}
	return nil, apperrors.New(apperrors.CodePokemonNotFound, "catalog returned status 404")
}

func (f *fakeCatalog) ListPokemon(ctx context.Context, limit, offset int) (*entity.PagedNames, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	return &entity.PagedNames{Count: 0}, nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]*entity.SimplifiedPokemon, error) {
	f.gotQuery = query
	return []*entity.SimplifiedPokemon{}, nil
}

func TestValidateIdentifier(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{"punctuation stripped", "Pikachu!", "pikachu", true},
		{"whitespace only", "   ", "", false},
		{"numeric id", "25", "25", true},
		{"name with hyphen", "Mr-Mime", "mr-mime", true},
		{"mixed letters and digits", "porygon2", "", false},
		{"non latin input", "ピカチュウ", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateIdentifier(tc.in)
			if !tc.valid {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListClampsLimit(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := NewService(catalog)

	_, err := svc.List(context.Background(), 200, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, catalog.gotLimit)

	_, err = svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, catalog.gotLimit)

	_, err = svc.List(context.Background(), -5, 40)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.gotLimit)
	assert.Equal(t, 40, catalog.gotOffset)
}

func TestSearchRejectsShortQuery(t *testing.T) {
	svc := NewService(&fakeCatalog{})

	_, err := svc.Search(context.Background(), " x ")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestSearchNoMatchIsNotAnError(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := NewService(catalog)

	got, err := svc.Search(context.Background(), "xyzxyz_not_real")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "xyzxyz_not_real", catalog.gotQuery)
}

func TestGetPairBothOrFail(t *testing.T) {
	pika := &entity.SimplifiedPokemon{Name: "pikachu", Total: 320}
	catalog := &fakeCatalog{pokemon: map[string]*entity.SimplifiedPokemon{"pikachu": pika}}
	svc := NewService(catalog)

	_, _, err := svc.GetPair(context.Background(), "pikachu", "missingno")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodePokemonNotFound))
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	pika := &entity.SimplifiedPokemon{
		Name:      "pikachu",
		Types:     []string{"electric"},
		Abilities: []string{"static"},
		Stats:     entity.BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
		Total:     320,
	}
	catalog := &fakeCatalog{pokemon: map[string]*entity.SimplifiedPokemon{"pikachu": pika}}
	svc := NewService(catalog)

	_, first, err := svc.Analyze(context.Background(), "Pikachu")
	require.NoError(t, err)
	_, second, err := svc.Analyze(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Standout stat: Speed (90)")
}
