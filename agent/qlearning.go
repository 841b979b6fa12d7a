package agent

import (
	"fmt"
	"qttt/game"

	"golang.org/x/exp/rand"
)

type Option func(q *QLearning)

// WithTable starts the agent from an existing table.
func WithTable(table *QTable) Option {
	return func(q *QLearning) {
		if table != nil {
			q.table = table
		}
	}
}

// QLearning is a tabular Q-learning agent bound to one seat.
type QLearning struct {
	seat      game.Cell
	catalogue []game.Action
	table     *QTable
}

func NewQLearning(seat game.Cell, size game.Vector2, options ...Option) *QLearning {
	if !seat.IsSeat() {
		panic(fmt.Sprintf("agent seat must be a player, got %s", seat))
	}
	q := &QLearning{
		seat:      seat,
		catalogue: game.NewState(size).LegalActions(seat),
		table:     NewQTable(),
	}
	for _, option := range options {
		option(q)
	}
	return q
}

func (q *QLearning) Seat() game.Cell {
	return q.seat
}

func (q *QLearning) Table() *QTable {
	return q.table
}

// Catalogue lists every action of the agent's seat in row-major order.
func (q *QLearning) Catalogue() []game.Action {
	return q.catalogue
}

func (q *QLearning) Value(state game.State, action game.Action) (float64, bool) {
	e, ok := q.table.Get(state, action)
	return e.Value, ok
}

func (q *QLearning) FindMove(state game.State, rng *rand.Rand, epsilon float64) game.Action {
	return q.ChooseAction(state, rng, epsilon)
}

// ChooseAction is epsilon-greedy over the legal actions of state. With
// probability 1-epsilon it returns the first action of highest value in
// catalogue order, otherwise a uniformly drawn legal action.
func (q *QLearning) ChooseAction(state game.State, rng *rand.Rand, epsilon float64) game.Action {
	legal := q.legal(state)
	if len(legal) == 0 {
		panic(ErrNoLegalActions)
	}

	if rng.Float64() > epsilon {
		best := legal[0]
		bestValue := q.table.Value(state, best)
		for _, a := range legal[1:] {
			if v := q.table.Value(state, a); v > bestValue {
				best, bestValue = a, v
			}
		}
		return best
	}

	// Rejection sampling over the catalogue is uniform over the legal subset.
	for {
		a := q.catalogue[rng.Intn(len(q.catalogue))]
		if state.IsLegal(a) {
			return a
		}
	}
}

// ChooseRandomAction returns a uniformly drawn legal action, ignoring the table.
func (q *QLearning) ChooseRandomAction(state game.State, rng *rand.Rand) game.Action {
	legal := q.legal(state)
	if len(legal) == 0 {
		panic(ErrNoLegalActions)
	}
	return legal[rng.Intn(len(legal))]
}

// UpdateQ applies one tabular Bellman step towards
// reward + gamma * max_a Q(next, a), where the max runs over the agent's legal
// actions in next and is 0 when there are none. Unseen pairs count as 0, but
// the max is not floored: it is negative when every legal successor is.
func (q *QLearning) UpdateQ(prev, next game.State, action game.Action, reward, eta, gamma float64) {
	maxNext := 0.0
	for i, a := range q.legal(next) {
		if v := q.table.Value(next, a); i == 0 || v > maxNext {
			maxNext = v
		}
	}
	target := reward + gamma*maxNext

	e, ok := q.table.Get(prev, action)
	if !ok {
		q.table.Set(prev, action, Entry{Value: eta * target, Visits: 1})
		return
	}
	e.Value += eta * (target - e.Value)
	e.Visits++
	q.table.Set(prev, action, e)
}

// legal filters the catalogue against state, preserving catalogue order.
func (q *QLearning) legal(state game.State) []game.Action {
	legal := make([]game.Action, 0, len(q.catalogue))
	for _, a := range q.catalogue {
		if state.IsLegal(a) {
			legal = append(legal, a)
		}
	}
	return legal
}
