package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests the board rules:
- construction and reset: empty cells, PlayerA on play, value equality
- play:
	- happy path: cell written, mover flipped, receiver untouched
	- errors: out of bounds, occupied, non-seat -> ErrIllegalMove, state unchanged
- scoring:
	- not terminal -> Empty (even with a complete line)
	- rows, columns, both diagonals on a full board
	- full board without a line -> Draw
	- rectangular boards have no diagonals
	- random playouts agree with a brute-force line count
*/

var size3 = Vector2{X: 3, Y: 3}

// board builds a state from rows of 'X', 'O' and '.'.
func board(t *testing.T, rows ...string) State {
	t.Helper()
	s := NewState(Vector2{X: len(rows), Y: len(rows[0])})
	buf := []byte(s.cells)
	xs, os := 0, 0
	for r, row := range rows {
		require.Len(t, row, s.cols, "rows must have equal length")
		for c, ch := range row {
			switch ch {
			case 'X':
				buf[r*s.cols+c] = byte(PlayerA)
				xs++
			case 'O':
				buf[r*s.cols+c] = byte(PlayerB)
				os++
			}
		}
	}
	s.cells = string(buf)
	if xs > os {
		s.onPlay = PlayerB
	}
	return s
}

func TestNewState(t *testing.T) {
	s := NewState(size3)

	require.Equal(t, size3, s.Size())
	require.Equal(t, PlayerA, s.OnPlay())
	require.Equal(t, 9, s.Count(Empty))
	require.False(t, s.Terminal())
	require.Equal(t, NewState(size3), s, "Fresh boards should compare equal")
	require.NotEqual(t, NewState(Vector2{X: 1, Y: 9}), s, "Dimensions are part of the value")

	require.Panics(t, func() { NewState(Vector2{X: 0, Y: 3}) })
	require.Panics(t, func() { NewState(Vector2{X: 3, Y: -1}) })
}

func TestPlay(t *testing.T) {
	t.Run("legal move writes the cell and passes the turn", func(t *testing.T) {
		s := NewState(size3)

		next, err := s.Play(Action{Player: PlayerA, Position: Vector2{X: 1, Y: 2}})

		require.NoError(t, err)
		require.Equal(t, PlayerA, next.Piece(Vector2{X: 1, Y: 2}))
		require.Equal(t, PlayerB, next.OnPlay())
		require.Equal(t, 1, next.Count(PlayerA))
		require.Equal(t, NewState(size3), s, "Receiver should not change")
	})

	t.Run("out of bounds", func(t *testing.T) {
		s := NewState(size3)

		for _, pos := range []Vector2{{X: -1}, {X: 3}, {Y: 3}, {X: 2, Y: -1}} {
			got, err := s.Play(Action{Player: PlayerA, Position: pos})

			require.ErrorIs(t, err, ErrIllegalMove)
			require.ErrorIs(t, err, ErrOutOfBounds)
			require.Equal(t, s, got, "State should be unchanged")
		}
	})

	t.Run("occupied cell", func(t *testing.T) {
		s := board(t, "X..", "...", "...")

		got, err := s.Play(Action{Player: PlayerB, Position: Vector2{}})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, err, ErrCellOccupied)
		require.Equal(t, s, got)
		require.Equal(t, PlayerB, s.OnPlay())
	})

	t.Run("non-seat player", func(t *testing.T) {
		s := NewState(size3)

		_, err := s.Play(Action{Player: Empty, Position: Vector2{}})

		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestReset(t *testing.T) {
	s := board(t, "XO.", ".X.", "..O")

	s.Reset()

	require.Equal(t, NewState(size3), s)
}

func TestCheckWinner(t *testing.T) {
	t.Run("not terminal is Empty even with a line", func(t *testing.T) {
		s := board(t, "XXX", "OO.", "...")

		require.False(t, s.Terminal())
		require.Equal(t, Empty, s.CheckWinner())
	})

	t.Run("row", func(t *testing.T) {
		require.Equal(t, PlayerA, board(t, "XXX", "OOX", "XOO").CheckWinner())
	})

	t.Run("column", func(t *testing.T) {
		require.Equal(t, PlayerB, board(t, "OXX", "OXO", "OOX").CheckWinner())
	})

	t.Run("main diagonal", func(t *testing.T) {
		require.Equal(t, PlayerA, board(t, "XOO", "OXX", "XOX").CheckWinner())
	})

	t.Run("anti-diagonal", func(t *testing.T) {
		s := board(t, "XXO", "XOX", "OXX")

		require.Equal(t, PlayerB, s.CheckWinner(), "Anti-diagonal (0,2) (1,1) (2,0) should win")
	})

	t.Run("anti-diagonal does not read the main diagonal", func(t *testing.T) {
		s := board(t, "OXX", "XOO", "XOX")

		require.Equal(t, Draw, s.CheckWinner())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		require.Equal(t, Draw, board(t, "XOX", "XOO", "OXX").CheckWinner())
	})

	t.Run("rows scanned before columns", func(t *testing.T) {
		s := board(t, "OOO", "XXX", "OXX")

		require.Equal(t, PlayerB, s.CheckWinner())
	})

	t.Run("rectangular boards have no diagonals", func(t *testing.T) {
		s := board(t, "XOO", "OXO", "OOX", "OXO")

		require.Equal(t, Draw, s.CheckWinner())
	})

	t.Run("rectangular column", func(t *testing.T) {
		s := board(t, "XOX", "XOO", "XXO", "XOO")

		require.Equal(t, PlayerA, s.CheckWinner())
	})
}

// completedLines lists the owner of every full row, column and, on square
// boards, diagonal of s.
func completedLines(s State) []Cell {
	var lines [][]Vector2
	for r := 0; r < s.rows; r++ {
		var line []Vector2
		for c := 0; c < s.cols; c++ {
			line = append(line, Vector2{X: r, Y: c})
		}
		lines = append(lines, line)
	}
	for c := 0; c < s.cols; c++ {
		var line []Vector2
		for r := 0; r < s.rows; r++ {
			line = append(line, Vector2{X: r, Y: c})
		}
		lines = append(lines, line)
	}
	if s.rows == s.cols {
		var main, anti []Vector2
		for i := 0; i < s.rows; i++ {
			main = append(main, Vector2{X: i, Y: i})
			anti = append(anti, Vector2{X: i, Y: s.cols - 1 - i})
		}
		lines = append(lines, main, anti)
	}

	var owners []Cell
	for _, line := range lines {
		owner := s.Piece(line[0])
		for _, pos := range line[1:] {
			if s.Piece(pos) != owner {
				owner = Empty
				break
			}
		}
		if owner.IsSeat() {
			owners = append(owners, owner)
		}
	}
	return owners
}

func TestRandomPlayouts(t *testing.T) {
	sizes := []Vector2{{X: 3, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 5}, {X: 1, Y: 3}}
	rng := rand.New(rand.NewSource(7))

	for _, size := range sizes {
		t.Run(size.String(), func(t *testing.T) {
			draws, wins := 0, 0
			for g := 0; g < 200; g++ {
				state := NewState(size)
				for !state.Terminal() {
					require.Equal(t, Empty, state.CheckWinner(), "No winner before the board is full")
					legal := state.LegalActions(state.OnPlay())
					next, err := state.Play(legal[rng.Intn(len(legal))])
					require.NoError(t, err)
					state = next
				}

				winner := state.CheckWinner()
				owners := completedLines(state)
				if len(owners) == 0 {
					require.Equal(t, Draw, winner, "Full board without a line:\n%s", state)
					draws++
					continue
				}
				require.True(t, winner.IsSeat(), "Full board with a line:\n%s", state)
				require.Contains(t, owners, winner)
				wins++
			}
			require.Equal(t, 200, draws+wins)
		})
	}
}

func TestLegalActions(t *testing.T) {
	s := board(t, "X.O", ".X.", "O..")

	got := s.LegalActions(PlayerB)

	require.Equal(t, []Action{
		{Player: PlayerB, Position: Vector2{X: 0, Y: 1}},
		{Player: PlayerB, Position: Vector2{X: 1, Y: 0}},
		{Player: PlayerB, Position: Vector2{X: 1, Y: 2}},
		{Player: PlayerB, Position: Vector2{X: 2, Y: 1}},
		{Player: PlayerB, Position: Vector2{X: 2, Y: 2}},
	}, got, "Legal actions should be the empty cells in row-major order")
	require.True(t, s.IsLegal(got[0]))
	require.False(t, s.IsLegal(Action{Player: PlayerB, Position: Vector2{}}))
	require.False(t, s.IsLegal(Action{Player: PlayerB, Position: Vector2{X: 5}}))
	require.Empty(t, board(t, "XOX", "XOO", "OXX").LegalActions(PlayerA))
}

func TestHash(t *testing.T) {
	a := board(t, "X..", "...", "...")
	b := board(t, ".X.", "...", "...")

	require.Equal(t, a.Hash(), board(t, "X..", "...", "...").Hash())
	require.NotEqual(t, a.Hash(), b.Hash())
	require.NotEqual(t, NewState(size3).Hash(), NewState(Vector2{X: 1, Y: 9}).Hash())
}
