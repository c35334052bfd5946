package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
	"github.com/Vmoney23/ScotlandYardAI/route"
)

func TestDemo(t *testing.T) {
	g := Demo()

	t.Run("every transport is used", func(t *testing.T) {
		seen := map[graph.Transport]bool{}
		for _, e := range g.Edges() {
			seen[e.Transport] = true
		}
		for _, mode := range graph.Transports {
			require.True(t, seen[mode], "The board should have a %s edge", mode)
		}
	})

	t.Run("the board is connected without boats", func(t *testing.T) {
		tree, err := route.NewCalculator(g).Tree(1, route.PursuerWeights)

		require.NoError(t, err)
		require.Equal(t, Locations, tree.NodeCount())
	})

	t.Run("each call builds a new graph", func(t *testing.T) {
		require.NotSame(t, g, Demo())
	})
}

func TestDemoSetup(t *testing.T) {
	t.Run("starting a game", func(t *testing.T) {
		setup, err := DemoSetup(MaxPursuers)
		require.NoError(t, err)

		s, err := game.New(Demo(), setup)

		require.NoError(t, err)
		require.False(t, s.IsGameOver())
		require.Equal(t, game.Black, s.CurrentPlayer())
		require.Len(t, s.Pursuers(), MaxPursuers)
		require.Equal(t, 5, s.TicketCount(game.Black, game.Secret))
		require.Equal(t, 10, s.TicketCount(game.Blue, game.Taxi))
		require.Zero(t, s.TicketCount(game.Blue, game.Secret))
		for r := 1; r <= Rounds; r++ {
			require.Equal(t, r == 3 || r == 8 || r == 12, s.IsRevealRound(r), "round %d", r)
		}
	})

	t.Run("setups do not share ticket maps", func(t *testing.T) {
		a, err := DemoSetup(2)
		require.NoError(t, err)
		b, err := DemoSetup(2)
		require.NoError(t, err)

		a.Tickets[game.Black][game.Taxi] = 0

		require.Equal(t, 4, b.Tickets[game.Black][game.Taxi])
		require.Equal(t, 4, fugitiveTickets[game.Taxi])
	})

	t.Run("rejecting pursuer counts", func(t *testing.T) {
		for _, n := range []int{0, MaxPursuers + 1} {
			_, err := DemoSetup(n)
			require.True(t, errors.Is(err, game.ErrInvalidView), "%d pursuers", n)
		}
	})
}
