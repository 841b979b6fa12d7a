package agent

import (
	"errors"
	"qttt/game"

	"golang.org/x/exp/rand"
)

// ErrNoLegalActions is the panic value raised when a seat is asked to move on
// a full board.
var ErrNoLegalActions = errors.New("no legal actions")

// Agent occupies one seat of a game.
type Agent interface {
	Seat() game.Cell
	// FindMove returns the action to play in state. Epsilon is the exploration
	// rate and is ignored by seats that do not learn.
	FindMove(state game.State, rng *rand.Rand, epsilon float64) game.Action
}

// Learner is an Agent that updates a value table from observed transitions.
type Learner interface {
	Agent
	UpdateQ(prev, next game.State, action game.Action, reward, eta, gamma float64)
	Table() *QTable
}
