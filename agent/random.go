package agent

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/search"
)

type randomPlayer struct {
	rng *rand.Rand
}

// NewRandom returns a baseline player choosing uniformly among the moves.
// Equal seeds give equal games.
func NewRandom(seed uint64) Player {
	return &randomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPlayer) Notify(_ context.Context, _ int, moves []game.Move, token Token, r Receiver) error {
	if len(moves) == 0 {
		return search.ErrNoMoves
	}
	return r.PlayMove(moves[p.rng.Intn(len(moves))], token)
}
