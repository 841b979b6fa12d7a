package engine

import (
	"errors"
	"fmt"
	"qttt/game"
)

var ErrMalformedTrajectory = errors.New("malformed trajectory")

// Trajectory records one game: States[i+1] is States[i] after Actions[i].
type Trajectory struct {
	States  []game.State
	Actions []game.Action
}

func NewTrajectory(initial game.State) Trajectory {
	return Trajectory{States: []game.State{initial}}
}

func (t *Trajectory) Append(action game.Action, next game.State) {
	t.Actions = append(t.Actions, action)
	t.States = append(t.States, next)
}

// Correction is the extra transition credited once a game has ended.
type Correction struct {
	Prev   game.State
	State  game.State
	Action game.Action
}

// Backprop returns the second-to-last transition of t: the move of the seat
// that did not end the game. Only that transition is read, so two actions
// (three states) are enough; a trajectory is malformed only when it has fewer
// than two actions or its state count is not one more than its action count.
func Backprop(t Trajectory) (Correction, error) {
	n := len(t.Actions)
	if n < 2 {
		return Correction{}, fmt.Errorf("%w: %d actions", ErrMalformedTrajectory, n)
	}
	if len(t.States) != n+1 {
		return Correction{}, fmt.Errorf("%w: %d states for %d actions", ErrMalformedTrajectory, len(t.States), n)
	}
	return Correction{
		Prev:   t.States[n-2],
		State:  t.States[n-1],
		Action: t.Actions[n-2],
	}, nil
}
