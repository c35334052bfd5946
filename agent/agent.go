// Package agent connects move finding to a game that notifies players of
// their turn.
package agent

import (
	"context"

	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
)

// Token confirms a move belongs to the turn it was issued for.
type Token uint64

// Receiver is the authoritative game a player reads from and answers to.
type Receiver interface {
	game.View
	PlayMove(move game.Move, token Token) error
}

type Player interface {
	// Notify asks the player to choose one of moves for the agent standing
	// at location and submit it to r with token, exactly once.
	Notify(ctx context.Context, location int, moves []game.Move, token Token, r Receiver) error
}

// Reporter is implemented by players that measure their own searches.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}
