package agent

import "qttt/game"

// Key identifies one value-table entry.
type Key struct {
	State  game.State
	Action game.Action
}

type Entry struct {
	Value  float64
	Visits uint32
}

// QTable is a sparse map of action values. Entries are created on first
// update and never removed.
type QTable struct {
	entries map[Key]Entry
}

func NewQTable() *QTable {
	return &QTable{entries: make(map[Key]Entry)}
}

// Get returns the entry for (state, action) and whether it exists.
func (t *QTable) Get(state game.State, action game.Action) (Entry, bool) {
	e, ok := t.entries[Key{State: state, Action: action}]
	return e, ok
}

// Value returns the stored value, with unseen pairs worth 0.
func (t *QTable) Value(state game.State, action game.Action) float64 {
	return t.entries[Key{State: state, Action: action}].Value
}

func (t *QTable) Set(state game.State, action game.Action, e Entry) {
	t.entries[Key{State: state, Action: action}] = e
}

func (t *QTable) Len() int {
	return len(t.entries)
}
