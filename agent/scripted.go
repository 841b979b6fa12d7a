package agent

import (
	"qttt/game"
	"qttt/utils"

	"golang.org/x/exp/rand"
)

// Scripted plays a fixed preference order: the center, then the corners, then
// the remaining cells in row-major order. It takes the first one still empty.
type Scripted struct {
	seat  game.Cell
	order []game.Vector2
}

func NewScripted(seat game.Cell, size game.Vector2) *Scripted {
	r, c := size.X, size.Y
	preferred := []game.Vector2{
		{X: r / 2, Y: c / 2},
		{X: 0, Y: 0},
		{X: 0, Y: c - 1},
		{X: r - 1, Y: 0},
		{X: r - 1, Y: c - 1},
	}
	for _, a := range game.NewState(size).LegalActions(seat) {
		preferred = append(preferred, a.Position)
	}

	return &Scripted{seat: seat, order: utils.Unique(preferred)}
}

func (s *Scripted) Seat() game.Cell {
	return s.seat
}

func (s *Scripted) FindMove(state game.State, _ *rand.Rand, _ float64) game.Action {
	for _, pos := range s.order {
		if state.Piece(pos) == game.Empty {
			return game.Action{Player: s.seat, Position: pos}
		}
	}
	panic(ErrNoLegalActions)
}
