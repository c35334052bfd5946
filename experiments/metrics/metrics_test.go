package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Vmoney23/ScotlandYardAI/game"
)

func TestCollector(t *testing.T) {
	t.Run("counting a search", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddEvaluation()
		c.AddCutoff()
		c.SetDepth(3)
		c.SetExhausted(true)

		m := c.Complete()

		require.Equal(t, 5, m.Nodes)
		require.Equal(t, 1, m.Evaluations)
		require.Equal(t, 1, m.Cutoffs)
		require.Equal(t, 3, m.Depth)
		require.True(t, m.Exhausted)
	})

	t.Run("starting again resets the counts", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.Complete()

		c.Start()

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("the dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 3, Pruning: true}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 0, Fugitive: 1, Pursuers: 2,
		GameMetric: GameMetric{
			StartingPlayer: game.Black,
			Winners:        []game.Colour{game.Blue, game.Red},
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     12,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       0,
		MoveMetric: MoveMetric{Step: 1, Player: game.Black, Move: "black taxi->2", SearchMetric: SearchMetric{Depth: 2, Nodes: 40}},
	}}))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	configs := read("agent_configs.csv")
	require.Len(t, configs, 2, "Header and one row")
	require.Equal(t, []string{"1", "minimax", "3", "0s", "0", "true", "0"}, configs[1])

	games := read("game_records.csv")
	require.Equal(t, "blue red", games[1][4])
	require.Equal(t, "12", games[1][9])

	moves := read("move_records.csv")
	require.Equal(t, "black taxi->2", moves[1][3])
	require.Equal(t, "40", moves[1][6])
}
