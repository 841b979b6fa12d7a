package metrics

import (
	"qttt/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3, 0.25, false)
	for _, w := range []game.Cell{game.PlayerA, game.PlayerA, game.PlayerB, game.Draw} {
		c.AddGame(w)
	}

	got := c.Complete(10, 7)

	require.Equal(t, 3, got.Epoch)
	require.Equal(t, 0.25, got.Epsilon)
	require.False(t, got.Evaluation)
	require.Equal(t, 4, got.GamesPlayed)
	require.Equal(t, 2, got.WinsA)
	require.Equal(t, 1, got.WinsB)
	require.Equal(t, 1, got.Draws)
	require.Equal(t, 10, got.TableSizeA)
	require.Equal(t, 7, got.TableSizeB)

	c.Start(4, 0, true)
	next := c.Complete(0, 0)
	require.Zero(t, next.GamesPlayed, "Start should clear the tally")
	require.True(t, next.Evaluation)
}

func TestEpochResult(t *testing.T) {
	r := EpochResult{GamesPlayed: 8, WinsA: 4, WinsB: 2, Draws: 2}

	a, b, d := r.PerMille()
	require.Equal(t, 500.0, a)
	require.Equal(t, 250.0, b)
	require.Equal(t, 250.0, d)

	a, b, d = EpochResult{}.PerMille()
	require.Zero(t, a+b+d)

	sum := r.Add(EpochResult{GamesPlayed: 2, WinsB: 2})
	require.Equal(t, 10, sum.GamesPlayed)
	require.Equal(t, 4, sum.WinsB)
	require.Equal(t, 8, r.GamesPlayed, "Add should not modify the receiver")
}
