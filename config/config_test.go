package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Vmoney23/ScotlandYardAI/search"
)

func TestParse(t *testing.T) {
	t.Run("missing settings keep their defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
search:
  depth: 5
  duration: 250ms
weights:
  adjacent: -800
experiment:
  games: 2
  pursuer: minimax
`))

		require.NoError(t, err)
		require.Equal(t, 5, cfg.Search.Depth)
		require.Equal(t, 250*time.Millisecond, cfg.Search.Duration)
		require.Equal(t, search.DefaultNodeBudget, cfg.Search.NodeBudget)
		require.True(t, cfg.Search.Pruning)
		require.Equal(t, -800.0, cfg.Weights.Adjacent)
		require.Equal(t, search.DefaultWeights().Win, cfg.Weights.Win)
		require.Equal(t, 2, cfg.Experiment.Games)
		require.Equal(t, Minimax, cfg.Experiment.Pursuer)
		require.Equal(t, Minimax, cfg.Experiment.Fugitive)
	})

	t.Run("an empty document is the default", func(t *testing.T) {
		cfg, err := Parse(nil)

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("rejecting invalid settings", func(t *testing.T) {
		for _, doc := range []string{
			"search: {depth: 0}",
			"search: {node_budget: -1}",
			"experiment: {parallel: 0}",
			"experiment: {fugitive: clever}",
			"search: [1, 2]",
		} {
			_, err := Parse([]byte(doc))
			require.Error(t, err, "%q should be rejected", doc)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("reading a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("search:\n  pruning: false\n"), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.False(t, cfg.Search.Pruning)
		require.Len(t, cfg.SearchOptions(), 4, "Depth, budget, weights and no pruning")
	})

	t.Run("a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
		require.Contains(t, err.Error(), "absent.yaml")
	})
}
