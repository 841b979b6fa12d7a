// Package game implements the board rules of generalized tic-tac-toe: a fixed
// rows x cols grid, two alternating seats, and line-based scoring.
package game

// StateHash is a compact digest of a State, used for logging and game records.
// Q-tables key on the State value itself, never on its hash.
type StateHash uint64
