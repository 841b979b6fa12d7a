package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrOutOfBounds  = fmt.Errorf("%w: position out of bounds", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell occupied", ErrIllegalMove)
	ErrNotASeat     = fmt.Errorf("%w: player is not a seat", ErrIllegalMove)
)

// State is a snapshot of a board: its fixed dimensions, the cells in row-major
// order and the seat on play. Cells are held in a string so that State is a
// comparable value and can be used directly as a map key.
type State struct {
	rows   int
	cols   int
	cells  string
	onPlay Cell
}

// NewState returns an empty board of the given size with PlayerA on play.
func NewState(size Vector2) State {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("invalid board size %s", size))
	}
	return State{
		rows:   size.X,
		cols:   size.Y,
		cells:  strings.Repeat(string(rune(Empty)), size.Area()),
		onPlay: PlayerA,
	}
}

// Reset clears the board and gives the move back to PlayerA.
func (s *State) Reset() {
	*s = NewState(s.Size())
}

func (s State) Size() Vector2 {
	return Vector2{X: s.rows, Y: s.cols}
}

func (s State) OnPlay() Cell {
	return s.onPlay
}

func (s State) InBounds(pos Vector2) bool {
	return pos.In(s.Size())
}

// Piece returns the content of pos. Callers must bounds-check first.
func (s State) Piece(pos Vector2) Cell {
	if !s.InBounds(pos) {
		panic(fmt.Sprintf("position %s outside %dx%d board", pos, s.rows, s.cols))
	}
	return s.at(pos.Index(s.cols))
}

func (s State) at(i int) Cell {
	return Cell(s.cells[i])
}

// Play returns the state after action. On error the receiver is returned
// unchanged.
func (s State) Play(action Action) (State, error) {
	if !action.Player.IsSeat() {
		return s, fmt.Errorf("%w: %s", ErrNotASeat, action.Player)
	}
	if !s.InBounds(action.Position) {
		return s, fmt.Errorf("%w: %s on %dx%d", ErrOutOfBounds, action.Position, s.rows, s.cols)
	}
	i := action.Position.Index(s.cols)
	if s.at(i) != Empty {
		return s, fmt.Errorf("%w: %s holds %s", ErrCellOccupied, action.Position, s.at(i))
	}

	buf := []byte(s.cells)
	buf[i] = byte(action.Player)
	return State{
		rows:   s.rows,
		cols:   s.cols,
		cells:  string(buf),
		onPlay: action.Player.Other(),
	}, nil
}

// Terminal reports whether the board is full.
func (s State) Terminal() bool {
	return strings.IndexByte(s.cells, byte(Empty)) < 0
}

// CheckWinner scores a full board. It returns Empty while any cell is empty,
// the owner of the first complete line otherwise, and Draw when there is none.
// Lines are scanned rows first, then columns, then the two diagonals, which
// only exist on square boards.
func (s State) CheckWinner() Cell {
	if !s.Terminal() {
		return Empty
	}
	for r := 0; r < s.rows; r++ {
		if c := s.line(Vector2{X: r}, Vector2{Y: 1}, s.cols); c != Empty {
			return c
		}
	}
	for col := 0; col < s.cols; col++ {
		if c := s.line(Vector2{Y: col}, Vector2{X: 1}, s.rows); c != Empty {
			return c
		}
	}
	if s.rows == s.cols {
		if c := s.line(Vector2{}, Vector2{X: 1, Y: 1}, s.rows); c != Empty {
			return c
		}
		if c := s.line(Vector2{Y: s.cols - 1}, Vector2{X: 1, Y: -1}, s.rows); c != Empty {
			return c
		}
	}
	return Draw
}

// line returns the owner of the n cells starting at start and stepping by dir,
// or Empty if they are not all the same seat.
func (s State) line(start, dir Vector2, n int) Cell {
	first := s.Piece(start)
	if first == Empty {
		return Empty
	}
	for k := 1; k < n; k++ {
		if s.Piece(start.Add(dir.Scale(k))) != first {
			return Empty
		}
	}
	return first
}

// LegalActions lists every empty cell for player in row-major order.
func (s State) LegalActions(player Cell) []Action {
	actions := make([]Action, 0, s.Count(Empty))
	for i := 0; i < len(s.cells); i++ {
		if s.at(i) == Empty {
			actions = append(actions, Action{
				Player:   player,
				Position: Vector2{X: i / s.cols, Y: i % s.cols},
			})
		}
	}
	return actions
}

// IsLegal reports whether action targets an empty in-bounds cell.
func (s State) IsLegal(action Action) bool {
	return s.InBounds(action.Position) && s.Piece(action.Position) == Empty
}

func (s State) Count(c Cell) int {
	return strings.Count(s.cells, string(rune(c)))
}

func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.rows))
	binary.Write(hasher, binary.LittleEndian, int64(s.cols))
	binary.Write(hasher, binary.LittleEndian, int8(s.onPlay))
	hasher.Write([]byte(s.cells))

	return StateHash(hasher.Sum64())
}
