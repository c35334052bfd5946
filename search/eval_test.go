package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
	"github.com/Vmoney23/ScotlandYardAI/route"
)

func evaluator(g *graph.Graph, w Weights) *Evaluator {
	return NewEvaluator(route.NewCalculator(g), w)
}

func TestEvaluateGameOver(t *testing.T) {
	g := pentagon(t)
	e := evaluator(g, DefaultWeights())

	t.Run("capture is a loss", func(t *testing.T) {
		s := duel(t, g, 1, 4, tickets(2, 2, 2, 0, 0), schedule(10))
		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Black, Ticket: game.Bus, Target: 3}))
		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Blue, Ticket: game.Bus, Target: 3}))

		require.Equal(t, -10000.0, e.Evaluate(s))
	})

	t.Run("surviving the schedule is a win", func(t *testing.T) {
		s := duel(t, g, 1, 4, tickets(2, 2, 2, 0, 0), schedule(1))
		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Black, Ticket: game.Taxi, Target: 2}))
		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Blue, Ticket: game.Taxi, Target: 5}))

		require.Equal(t, 10000.0, e.Evaluate(s))
	})
}

func TestEvaluateDistance(t *testing.T) {
	g := pentagon(t)
	require.NoError(t, g.AddNode(9))

	t.Run("route weight adds to the score", func(t *testing.T) {
		s := duel(t, g, 1, 4, tickets(2, 2, 2, 0, 0), schedule(10))

		score := evaluator(g, Weights{Distance: 1}).Evaluate(s)

		require.Equal(t, 4.0, score, "4 -bus- 3 -bus- 1 is cheaper than 4 -taxi- 5 -underground- 1")
	})

	t.Run("unreachable pursuers favour the fugitive", func(t *testing.T) {
		s := duel(t, g, 1, 9, tickets(2, 2, 2, 0, 0), schedule(10))

		require.Equal(t, 200.0, evaluator(g, Weights{Distance: 1, Unreachable: 200}).Evaluate(s))
	})

	t.Run("adjacent pursuers weigh double when they move next", func(t *testing.T) {
		w := Weights{Adjacent: -400, AdjacentHops: 1, NextMover: 2}
		s := duel(t, g, 1, 2, tickets(2, 2, 2, 0, 0), schedule(10))
		require.Equal(t, -400.0, evaluator(g, w).Evaluate(s))

		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Black, Ticket: game.Bus, Target: 3}))

		require.Equal(t, -800.0, evaluator(g, w).Evaluate(s))
	})

	t.Run("hop thresholds", func(t *testing.T) {
		w := Weights{Adjacent: -400, AdjacentHops: 1, Close: -100, CloseHops: 2, Far: 50, FarHops: 5}
		s := duel(t, g, 2, 4, tickets(2, 2, 2, 0, 0), schedule(10))

		require.Equal(t, -100.0, evaluator(g, w).Evaluate(s), "4 -bus- 3 -taxi- 2 is two hops")
	})
}

func TestEvaluateDegree(t *testing.T) {
	g := pentagon(t)
	s := duel(t, g, 1, 4, tickets(2, 2, 2, 0, 0), schedule(10))

	require.Equal(t, -60.0, evaluator(g, Weights{DeadEnd: -60, DeadEndDegree: 3, OpenDegree: 10}).Evaluate(s),
		"Location 1 has three neighbours")
	require.Equal(t, 40.0, evaluator(g, Weights{Open: 40, OpenDegree: 3, DeadEndDegree: 1}).Evaluate(s))
}

func TestEvaluateTickets(t *testing.T) {
	g := pentagon(t)
	w := Weights{SecretBeforeReveal: 30, Secret: -10, DoubleBeforeReveal: 40, Double: -60}

	t.Run("secret move before a reveal", func(t *testing.T) {
		s := duel(t, g, 1, 4, tickets(0, 0, 0, 1, 0), schedule(10, 2))
		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Black, Ticket: game.Secret, Target: 2}))

		require.Equal(t, 30.0, evaluator(g, w).Evaluate(s))
	})

	t.Run("secret move at any other time", func(t *testing.T) {
		s := duel(t, g, 1, 4, tickets(0, 0, 0, 1, 0), schedule(10, 3))
		require.NoError(t, s.Apply(game.TicketMove{Colour: game.Black, Ticket: game.Secret, Target: 2}))

		require.Equal(t, -10.0, evaluator(g, w).Evaluate(s))
	})

	t.Run("double move into a reveal", func(t *testing.T) {
		move := game.DoubleMove{Colour: game.Black,
			First:  game.TicketMove{Colour: game.Black, Ticket: game.Taxi, Target: 2},
			Second: game.TicketMove{Colour: game.Black, Ticket: game.Taxi, Target: 3}}

		revealed := duel(t, g, 1, 5, tickets(2, 0, 0, 0, 1), schedule(10, 1))
		require.NoError(t, revealed.Apply(move))
		hidden := duel(t, g, 1, 5, tickets(2, 0, 0, 0, 1), schedule(10, 3))
		require.NoError(t, hidden.Apply(move))

		require.Equal(t, 40.0, evaluator(g, w).Evaluate(revealed))
		require.Equal(t, -60.0, evaluator(g, w).Evaluate(hidden))
	})
}

func TestEvaluateIsPure(t *testing.T) {
	g := pentagon(t)
	s := duel(t, g, 1, 4, tickets(2, 2, 2, 1, 1), schedule(10, 3))
	before := s.Clone()
	e := evaluator(g, DefaultWeights())

	first := e.Evaluate(s)
	second := e.Evaluate(s)

	require.Equal(t, first, second)
	require.Equal(t, before, s, "Evaluation must not change the state")
}
