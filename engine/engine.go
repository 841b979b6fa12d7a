package engine

import (
	"fmt"
	"qttt/game"

	"golang.org/x/exp/rand"
)

type Engine interface {
	// Run plays one game to the end, updating any learning seats on the way.
	Run(rng *rand.Rand, epsilon float64) (Result, error)
}

type Result struct {
	Winner     game.Cell
	Plies      int
	Trajectory Trajectory
}

// Bootstrap selects which state a learner's per-move update looks ahead to.
type Bootstrap int

const (
	// BootstrapMove updates against the state right after the learner's move.
	BootstrapMove Bootstrap = iota
	// BootstrapReply defers a non-terminal update until the opponent has
	// replied, so the next state has the learner on play again.
	BootstrapReply
)

func (b Bootstrap) String() string {
	switch b {
	case BootstrapMove:
		return "move"
	case BootstrapReply:
		return "reply"
	default:
		return fmt.Sprintf("Bootstrap(%d)", int(b))
	}
}

func ParseBootstrap(s string) (Bootstrap, error) {
	switch s {
	case "", "move":
		return BootstrapMove, nil
	case "reply":
		return BootstrapReply, nil
	default:
		return 0, fmt.Errorf("unknown bootstrap mode %q", s)
	}
}
