package engine

import "qttt/game"

// Rewards holds the reward constants. The first group is paid on every move,
// the second once per game to the seat that moved second to last.
// OutcomeWin defaults to OutcomeLoss: every non-draw outcome is scored -0.5.
type Rewards struct {
	Win  float64
	Draw float64
	Step float64

	OutcomeWin  float64
	OutcomeDraw float64
	OutcomeLoss float64
}

func DefaultRewards() Rewards {
	return Rewards{
		Win:         1.0,
		Draw:        0.5,
		Step:        0.0,
		OutcomeWin:  -0.5,
		OutcomeDraw: 0.5,
		OutcomeLoss: -0.5,
	}
}

// Immediate is the reward for mover given the winner of the resulting state.
func (r Rewards) Immediate(winner, mover game.Cell) float64 {
	switch winner {
	case mover:
		return r.Win
	case game.Draw:
		return r.Draw
	default:
		return r.Step
	}
}

// Outcome is the terminal reward for seat given the final winner.
func (r Rewards) Outcome(winner, seat game.Cell) float64 {
	switch winner {
	case game.Draw:
		return r.OutcomeDraw
	case seat:
		return r.OutcomeWin
	default:
		return r.OutcomeLoss
	}
}
