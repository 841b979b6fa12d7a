package game

import "fmt"

// Cell is the content of one board square. Draw is a result tag only and is
// never written to a board.
type Cell int8

const (
	Draw Cell = iota - 1
	Empty
	PlayerA
	PlayerB
)

// IsSeat reports whether c is one of the two playing seats.
func (c Cell) IsSeat() bool {
	return c == PlayerA || c == PlayerB
}

// Other returns the opposing seat, or Empty for anything that is not a seat.
func (c Cell) Other() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Index maps PlayerA to 0 and PlayerB to 1.
func (c Cell) Index() int {
	switch c {
	case PlayerA:
		return 0
	case PlayerB:
		return 1
	default:
		panic(fmt.Sprintf("cell %d is not a seat", c))
	}
}

func (c Cell) String() string {
	switch c {
	case Draw:
		return "Draw"
	case Empty:
		return "Empty"
	case PlayerA:
		return "Player A"
	case PlayerB:
		return "Player B"
	default:
		return fmt.Sprintf("Cell(%d)", int8(c))
	}
}

// ParseSeat accepts "A", "a", "B" and "b" as well as the full seat names
// ("PlayerA", "Player A" and their B counterparts). Matching is otherwise exact.
func ParseSeat(s string) (Cell, error) {
	switch s {
	case "A", "a", "PlayerA", "Player A":
		return PlayerA, nil
	case "B", "b", "PlayerB", "Player B":
		return PlayerB, nil
	default:
		return Empty, fmt.Errorf("unknown seat %q", s)
	}
}
