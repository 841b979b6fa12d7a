package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		s := board(t, "X.O", ".X.", "...")

		require.Equal(t, " X  .  O \n .  X  . \n .  .  . ", s.String())
	})

	t.Run("rectangular", func(t *testing.T) {
		s := NewState(Vector2{X: 2, Y: 4})

		lines := strings.Split(s.String(), "\n")

		require.Len(t, lines, 2)
		require.Len(t, lines[0], 12)
	})

	t.Run("colored keeps the glyphs", func(t *testing.T) {
		s := board(t, "XO")

		out := s.Render(true)

		require.Contains(t, out, glyphA)
		require.Contains(t, out, glyphB)
		require.Contains(t, out, "\x1b[", "Colored output should carry escape sequences")
		require.NotEqual(t, s.String(), out)
	})
}
