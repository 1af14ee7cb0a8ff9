package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// 精选名单，按需渲染的静态只读资源
var (
	popularPokemon = []string{
		"pikachu", "charizard", "mewtwo", "eevee", "lucario",
		"gengar", "snorlax", "gyarados", "dragonite", "garchomp",
	}
	starterPokemon = []string{
		"bulbasaur", "charmander", "squirtle",
		"chikorita", "cyndaquil", "totodile",
		"treecko", "torchic", "mudkip",
	}
	legendaryPokemon = []string{
		"articuno", "zapdos", "moltres", "mewtwo",
		"lugia", "ho-oh", "rayquaza", "dialga", "palkia", "arceus",
	}
)

// registerResources 注册三个静态聚合资源
func (s *Server) registerResources() {
	s.addNameList("pokemon://popular", "Popular Pokemon",
		"A curated list of widely recognized Pokemon.", popularPokemon)
	s.addNameList("pokemon://starters", "Starter Pokemon",
		"Starter Pokemon from the first three generations.", starterPokemon)
	s.addNameList("pokemon://legendary", "Legendary Pokemon",
		"A curated list of legendary and mythical Pokemon.", legendaryPokemon)
}

func (s *Server) addNameList(uri, name, description string, names []string) {
	resource := mcp.NewResource(uri, name,
		mcp.WithResourceDescription(description),
		mcp.WithMIMEType("text/plain"),
	)

	s.inner.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", name)
		for _, n := range names {
			fmt.Fprintf(&b, "- %s\n", n)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     b.String(),
			},
		}, nil
	})
}
