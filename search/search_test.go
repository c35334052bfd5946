package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
)

// pentagon is a five location board:
//
//	1 -taxi- 2 -taxi- 3 -bus- 4 -taxi- 5 -underground- 1
//	1 -bus- 3
func pentagon(t *testing.T) *graph.Graph {
	g := graph.New()
	for n := 1; n <= 5; n++ {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge(1, 2, graph.Taxi))
	require.NoError(t, g.AddEdge(2, 3, graph.Taxi))
	require.NoError(t, g.AddEdge(3, 4, graph.Bus))
	require.NoError(t, g.AddEdge(4, 5, graph.Taxi))
	require.NoError(t, g.AddEdge(5, 1, graph.Underground))
	require.NoError(t, g.AddEdge(1, 3, graph.Bus))
	return g
}

func tickets(taxi, bus, underground, secret, double int) map[game.Ticket]int {
	return map[game.Ticket]int{
		game.Taxi: taxi, game.Bus: bus, game.Underground: underground,
		game.Secret: secret, game.Double: double,
	}
}

func schedule(n int, reveal ...int) []bool {
	rounds := make([]bool, n+1)
	for _, r := range reveal {
		rounds[r] = true
	}
	return rounds
}

// duel starts a game between the fugitive and one blue pursuer.
func duel(t *testing.T, g *graph.Graph, fugitive, pursuer int, black map[game.Ticket]int, rounds []bool) *game.State {
	s, err := game.New(g, game.Setup{
		Players:   []game.Colour{game.Black, game.Blue},
		Locations: map[game.Colour]int{game.Black: fugitive, game.Blue: pursuer},
		Tickets: map[game.Colour]map[game.Ticket]int{
			game.Black: black,
			game.Blue:  tickets(4, 4, 4, 0, 0),
		},
		Rounds: rounds,
	})
	require.NoError(t, err)
	return s
}
