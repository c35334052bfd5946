package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
	"github.com/Vmoney23/ScotlandYardAI/search"
)

type minimaxPlayer struct {
	graph    *graph.Graph
	searcher *search.Minimax
	last     metrics.SearchMetric
}

// NewMinimax returns a player that searches a fresh snapshot of the game
// on every turn.
func NewMinimax(g *graph.Graph, searcher *search.Minimax) Player {
	return &minimaxPlayer{graph: g, searcher: searcher}
}

func (p *minimaxPlayer) Notify(ctx context.Context, location int, moves []game.Move, token Token, r Receiver) error {
	if len(moves) == 0 {
		return search.ErrNoMoves
	}

	state, err := game.NewState(r, p.graph)
	if err != nil {
		return fmt.Errorf("cannot snapshot game: %w", err)
	}
	player := state.CurrentPlayer()
	if at := state.Location(player); at != location {
		log.Warn().Msgf("notified at %d but %s stands at %d", location, player, at)
	}

	move, metric, err := p.searcher.FindMove(ctx, state, moves)
	if err != nil {
		return fmt.Errorf("cannot find move for %s: %w", player, err)
	}
	p.last = metric

	log.Info().Str("player", player.String()).Int("depth", metric.Depth).Msgf("playing %s", move)
	return r.PlayMove(move, token)
}

func (p *minimaxPlayer) LastMetric() metrics.SearchMetric {
	return p.last
}
