// Package engine referees games between players on one machine.
package engine

import (
	"context"

	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
)

const MaxTurns = 500

type Engine interface {
	// Run plays until the game is over or MaxTurns moves have been made.
	Run(ctx context.Context) (Result, error)
}

type Result struct {
	Winners     []game.Colour
	FugitiveWon bool
	Turns       int
	Game        metrics.GameMetric
	Moves       []metrics.MoveMetric
}
