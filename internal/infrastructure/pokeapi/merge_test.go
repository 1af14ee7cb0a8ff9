package pokeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokebattle-ai-api/internal/domain/entity"
)

func statValue(name string, base int) entity.StatValue {
	return entity.StatValue{BaseStat: base, Stat: entity.NamedRef{Name: name}}
}

func TestSimplifyTotalEqualsStatSum(t *testing.T) {
	rec := &entity.PokemonRecord{
		ID:   25,
		Name: "pikachu",
		Stats: []entity.StatValue{
			statValue("hp", 35),
			statValue("attack", 55),
			statValue("defense", 40),
			statValue("special-attack", 50),
			statValue("special-defense", 50),
			statValue("speed", 90),
		},
	}

	p := Simplify(rec, &entity.SpeciesRecord{})
	assert.Equal(t, 320, p.Total)
	assert.Equal(t, p.Stats.Sum(), p.Total)
}

func TestSimplifyMissingStatDefaultsToZero(t *testing.T) {
	rec := &entity.PokemonRecord{
		Name: "glitchmon",
		Stats: []entity.StatValue{
			statValue("hp", 100),
			statValue("speed", 50),
		},
	}

	p := Simplify(rec, nil)
	assert.Equal(t, 0, p.Stats.Attack)
	assert.Equal(t, 150, p.Total)
}

func TestSimplifyOrdersAndDeduplicatesSlots(t *testing.T) {
	rec := &entity.PokemonRecord{
		Types: []entity.TypeSlot{
			{Slot: 2, Type: entity.NamedRef{Name: "flying"}},
			{Slot: 1, Type: entity.NamedRef{Name: "electric"}},
			{Slot: 3, Type: entity.NamedRef{Name: "electric"}},
		},
		Abilities: []entity.AbilitySlot{
			{Slot: 3, Ability: entity.NamedRef{Name: "lightning-rod"}},
			{Slot: 1, Ability: entity.NamedRef{Name: "static"}},
			{Slot: 2, Ability: entity.NamedRef{Name: "static"}},
		},
	}

	p := Simplify(rec, nil)
	assert.Equal(t, []string{"electric", "flying"}, p.Types)
	assert.Equal(t, []string{"static", "lightning-rod"}, p.Abilities)
}

func TestSimplifyDescriptionSelection(t *testing.T) {
	sp := &entity.SpeciesRecord{
		FlavorTextEntries: []entity.FlavorText{
			{FlavorText: "Texte en français.", Language: entity.NamedRef{Name: "fr"}},
			{FlavorText: "When several of\nthese POKéMON\fgather, their\nelectricity could build.", Language: entity.NamedRef{Name: "en"}},
		},
	}

	p := Simplify(&entity.PokemonRecord{}, sp)
	assert.Equal(t, "When several of these POKéMON gather, their electricity could build.", p.Description)
}

func TestSimplifyDescriptionFallsBackToFixedString(t *testing.T) {
	sp := &entity.SpeciesRecord{
		FlavorTextEntries: []entity.FlavorText{
			{FlavorText: "solo giapponese", Language: entity.NamedRef{Name: "it"}},
		},
	}

	p := Simplify(&entity.PokemonRecord{}, sp)
	assert.Equal(t, "No description available.", p.Description)
}
