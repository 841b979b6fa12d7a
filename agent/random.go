package agent

import (
	"qttt/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly drawn legal action and never learns.
type Random struct {
	q *QLearning
}

func NewRandom(seat game.Cell, size game.Vector2) *Random {
	return &Random{q: NewQLearning(seat, size)}
}

func (r *Random) Seat() game.Cell {
	return r.q.Seat()
}

func (r *Random) FindMove(state game.State, rng *rand.Rand, _ float64) game.Action {
	return r.q.ChooseRandomAction(state, rng)
}
