package game

import "fmt"

// Action places Player's mark at Position. It is a comparable value and forms
// half of a Q-table key.
type Action struct {
	Player   Cell
	Position Vector2
}

func (a Action) String() string {
	return fmt.Sprintf("%s@%s", a.Player, a.Position)
}
