package experiments

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Vmoney23/ScotlandYardAI/board"
	"github.com/Vmoney23/ScotlandYardAI/config"
	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/search"
)

// Sample is one search of the opening position.
type Sample struct {
	Config metrics.AgentConfig
	Move   string
	Score  float64
	metrics.SearchMetric
}

// RunThroughput searches the fugitive's opening position at every depth up
// to cfg.Search.Depth, once with pruning and once without, so the node
// counts can be compared.
func RunThroughput(ctx context.Context, cfg config.Config) ([]Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := board.Demo()
	setup, err := board.DemoSetup(cfg.Experiment.Pursuers)
	if err != nil {
		return nil, err
	}
	state, err := game.New(g, setup)
	if err != nil {
		return nil, err
	}
	moves := state.LegalMoves(state.CurrentPlayer())

	log.Info().Msg("starting throughput experiment...")

	samples := []Sample{}
	for depth := 1; depth <= cfg.Search.Depth; depth++ {
		for _, pruning := range []bool{true, false} {
			ac := metrics.AgentConfig{
				ID:         len(samples) + 1,
				Kind:       config.Minimax,
				Depth:      depth,
				Duration:   cfg.Search.Duration,
				NodeBudget: cfg.Search.NodeBudget,
				Pruning:    pruning,
			}
			options := []search.Option{
				search.WithDepth(depth),
				search.WithNodeBudget(cfg.Search.NodeBudget),
				search.WithWeights(cfg.Weights),
				search.WithMetrics(),
			}
			if cfg.Search.Duration > 0 {
				options = append(options, search.WithDuration(cfg.Search.Duration))
			}
			if !pruning {
				options = append(options, search.WithoutPruning())
			}

			m := search.New(options...)
			r, err := m.Search(ctx, state, moves)
			if err != nil {
				return samples, err
			}
			metric := m.Metrics()
			samples = append(samples, Sample{Config: ac, Move: r.Move.String(), Score: r.Score, SearchMetric: metric})

			log.Info().Msgf("depth %d pruning=%t: %d nodes, %d evaluations in %s", depth, pruning, metric.Nodes, metric.Evaluations, metric.Duration)
		}
	}

	if cfg.Experiment.Output == "" {
		return samples, nil
	}
	writer, err := metrics.NewWriter(cfg.Experiment.Output)
	if err != nil {
		return samples, err
	}
	configs := make([]metrics.AgentConfig, len(samples))
	records := make([]metrics.MoveRecord, len(samples))
	for i, s := range samples {
		configs[i] = s.Config
		records[i] = metrics.MoveRecord{
			Game: s.Config.ID,
			MoveMetric: metrics.MoveMetric{
				Step:         1,
				Player:       state.CurrentPlayer(),
				Move:         s.Move,
				SearchMetric: s.SearchMetric,
			},
		}
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return samples, err
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return samples, err
	}
	log.Info().Msgf("stored throughput records in %s", writer.Dir())
	return samples, nil
}
