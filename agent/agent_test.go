package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
	"github.com/Vmoney23/ScotlandYardAI/search"
)

type submission struct {
	move  game.Move
	token Token
}

// recordingReceiver serves a state as the view and records submissions.
type recordingReceiver struct {
	*game.State
	played []submission
	err    error
}

func (r *recordingReceiver) PlayMove(move game.Move, token Token) error {
	r.played = append(r.played, submission{move: move, token: token})
	return r.err
}

func square(t *testing.T) (*graph.Graph, *recordingReceiver) {
	g := graph.New()
	for n := 1; n <= 4; n++ {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge(1, 2, graph.Taxi))
	require.NoError(t, g.AddEdge(2, 3, graph.Taxi))
	require.NoError(t, g.AddEdge(3, 4, graph.Bus))
	require.NoError(t, g.AddEdge(4, 1, graph.Taxi))

	full := map[game.Ticket]int{game.Taxi: 4, game.Bus: 4, game.Underground: 4}
	s, err := game.New(g, game.Setup{
		Players:   []game.Colour{game.Black, game.Blue},
		Locations: map[game.Colour]int{game.Black: 1, game.Blue: 3},
		Tickets:   map[game.Colour]map[game.Ticket]int{game.Black: full, game.Blue: full},
		Rounds:    make([]bool, 11),
	})
	require.NoError(t, err)
	return g, &recordingReceiver{State: s}
}

func TestMinimaxPlayer(t *testing.T) {
	t.Run("submitting one supplied move with the token", func(t *testing.T) {
		g, r := square(t)
		moves := r.LegalMoves(game.Black)
		p := NewMinimax(g, search.New(search.WithDepth(2), search.WithMetrics()))

		err := p.Notify(context.Background(), 1, moves, 42, r)

		require.NoError(t, err)
		require.Len(t, r.played, 1, "Exactly one move should be submitted")
		require.Contains(t, moves, r.played[0].move)
		require.Equal(t, Token(42), r.played[0].token)
		require.Equal(t, 2, p.(Reporter).LastMetric().Depth)
	})

	t.Run("no moves", func(t *testing.T) {
		g, r := square(t)

		err := NewMinimax(g, search.New()).Notify(context.Background(), 1, nil, 1, r)

		require.True(t, errors.Is(err, search.ErrNoMoves))
		require.Empty(t, r.played)
	})

	t.Run("receiver errors are returned", func(t *testing.T) {
		g, r := square(t)
		r.err = errors.New("rejected")

		err := NewMinimax(g, search.New(search.WithDepth(1))).Notify(context.Background(), 1, r.LegalMoves(game.Black), 1, r)

		require.EqualError(t, err, "rejected")
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("submitting one supplied move with the token", func(t *testing.T) {
		_, r := square(t)
		moves := r.LegalMoves(game.Black)

		require.NoError(t, NewRandom(7).Notify(context.Background(), 1, moves, 9, r))

		require.Len(t, r.played, 1)
		require.Contains(t, moves, r.played[0].move)
		require.Equal(t, Token(9), r.played[0].token)
	})

	t.Run("equal seeds choose alike", func(t *testing.T) {
		_, r1 := square(t)
		_, r2 := square(t)
		moves := r1.LegalMoves(game.Black)
		p1, p2 := NewRandom(3), NewRandom(3)

		for i := 0; i < 20; i++ {
			require.NoError(t, p1.Notify(context.Background(), 1, moves, Token(i), r1))
			require.NoError(t, p2.Notify(context.Background(), 1, moves, Token(i), r2))
		}

		require.Equal(t, r1.played, r2.played)
	})

	t.Run("no moves", func(t *testing.T) {
		_, r := square(t)

		require.True(t, errors.Is(NewRandom(1).Notify(context.Background(), 1, nil, 1, r), search.ErrNoMoves))
	})
}
