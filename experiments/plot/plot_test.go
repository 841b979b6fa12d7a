package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"qttt/experiments/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	results := []metrics.EpochResult{
		{Epoch: 0, GamesPlayed: 10, WinsA: 5, WinsB: 3, Draws: 2},
		{Epoch: 1, GamesPlayed: 10, WinsA: 7, WinsB: 1, Draws: 2},
		{Epoch: 2, Evaluation: true, GamesPlayed: 4, WinsA: 4},
	}

	t.Run("html page with all series", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, Render(&buf, "self-play 3x3", results))

		out := buf.String()
		require.Contains(t, out, "<html")
		require.Contains(t, out, "self-play 3x3")
		require.Contains(t, out, "wins A")
		require.Contains(t, out, "wins B")
		require.Contains(t, out, "draws")
		require.Contains(t, out, "eval")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ChartFile)

		require.NoError(t, RenderFile(path, "run", results))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	})

	t.Run("no results", func(t *testing.T) {
		require.ErrorIs(t, Render(&bytes.Buffer{}, "empty", nil), ErrNoResults)
	})
}
