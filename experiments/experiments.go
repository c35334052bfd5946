// Package experiments plays batches of games on the demo board and stores
// the results as CSV records.
package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Vmoney23/ScotlandYardAI/agent"
	"github.com/Vmoney23/ScotlandYardAI/board"
	"github.com/Vmoney23/ScotlandYardAI/config"
	"github.com/Vmoney23/ScotlandYardAI/engine"
	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
	"github.com/Vmoney23/ScotlandYardAI/search"
)

const (
	fugitiveID = 1
	pursuersID = 2
)

type Summary struct {
	Games        int
	FugitiveWins int
	Unfinished   int
	Dir          string // empty if nothing was written
}

// Run plays cfg.Experiment.Games games, at most cfg.Experiment.Parallel at
// a time. All games share one board.
func Run(ctx context.Context, cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	ex := cfg.Experiment
	g := board.Demo()

	log.Info().Msgf("starting %d games, fugitive=%s pursuers=%d×%s", ex.Games, ex.Fugitive, ex.Pursuers, ex.Pursuer)

	results := make([]engine.Result, ex.Games)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(ex.Parallel)
	for i := 0; i < ex.Games; i++ {
		i := i
		group.Go(func() error {
			r, err := runGame(ctx, cfg, g, ex.Seed+uint64(i)*uint64(board.MaxPursuers+1))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = r
			log.Info().Msgf("completed game %d of %d, fugitive won: %t", i+1, ex.Games, r.FugitiveWon)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Games: ex.Games}
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		if r.FugitiveWon {
			summary.FugitiveWins++
		}
		if len(r.Winners) == 0 {
			summary.Unfinished++
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Fugitive:   fugitiveID,
			Pursuers:   pursuersID,
			GameMetric: r.Game,
		})
		for _, mm := range r.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	log.Info().Msgf("fugitive won %d of %d games, %d unfinished", summary.FugitiveWins, summary.Games, summary.Unfinished)

	if ex.Output == "" {
		return summary, nil
	}
	writer, err := metrics.NewWriter(ex.Output)
	if err != nil {
		return summary, err
	}
	if err := writer.WriteAgentConfigs(agentConfigs(cfg)); err != nil {
		return summary, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	summary.Dir = writer.Dir()
	log.Info().Msgf("stored records in %s", summary.Dir)
	return summary, nil
}

// runGame plays one game. Every player gets its own searcher and seed.
func runGame(ctx context.Context, cfg config.Config, g *graph.Graph, seed uint64) (engine.Result, error) {
	setup, err := board.DemoSetup(cfg.Experiment.Pursuers)
	if err != nil {
		return engine.Result{}, err
	}
	state, err := game.New(g, setup)
	if err != nil {
		return engine.Result{}, err
	}

	players := make(map[game.Colour]agent.Player, len(setup.Players))
	for i, c := range setup.Players {
		kind := cfg.Experiment.Pursuer
		if c.IsFugitive() {
			kind = cfg.Experiment.Fugitive
		}
		players[c] = newPlayer(kind, cfg, g, seed+uint64(i))
	}

	e, err := engine.NewLocal(state, players, engine.WithMaxTurns(cfg.Experiment.MaxTurns))
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run(ctx)
}

func newPlayer(kind string, cfg config.Config, g *graph.Graph, seed uint64) agent.Player {
	if kind == config.Random {
		return agent.NewRandom(seed)
	}
	options := append(cfg.SearchOptions(), search.WithMetrics())
	return agent.NewMinimax(g, search.New(options...))
}

func agentConfigs(cfg config.Config) []metrics.AgentConfig {
	describe := func(id int, kind string) metrics.AgentConfig {
		ac := metrics.AgentConfig{ID: id, Kind: kind, Seed: cfg.Experiment.Seed}
		if kind == config.Minimax {
			ac.Depth = cfg.Search.Depth
			ac.Duration = cfg.Search.Duration
			ac.NodeBudget = cfg.Search.NodeBudget
			ac.Pruning = cfg.Search.Pruning
		}
		return ac
	}
	return []metrics.AgentConfig{
		describe(fugitiveID, cfg.Experiment.Fugitive),
		describe(pursuersID, cfg.Experiment.Pursuer),
	}
}
