package engine

import (
	"fmt"
	"qttt/agent"
	"qttt/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var _ Engine = (*Session)(nil)

type Option func(s *Session)

func WithRewards(rewards Rewards) Option {
	return func(s *Session) {
		s.rewards = rewards
	}
}

func WithLearningRate(eta float64) Option {
	return func(s *Session) {
		if eta >= 0 {
			s.eta = eta
		}
	}
}

func WithDiscount(gamma float64) Option {
	return func(s *Session) {
		if gamma >= 0 && gamma <= 1 {
			s.gamma = gamma
		}
	}
}

func WithBootstrap(mode Bootstrap) Option {
	return func(s *Session) {
		s.bootstrap = mode
	}
}

// WithTrace logs the board after every ply at debug level.
func WithTrace(trace bool) Option {
	return func(s *Session) {
		s.trace = trace
	}
}

// Session plays consecutive games between two fixed seats on one board.
// Value tables live in the seats and persist across games.
type Session struct {
	state     game.State
	seats     [2]agent.Agent
	rewards   Rewards
	eta       float64
	gamma     float64
	bootstrap Bootstrap
	trace     bool
}

type pending struct {
	prev   game.State
	action game.Action
	reward float64
}

func NewSession(size game.Vector2, seatA, seatB agent.Agent, options ...Option) *Session {
	if seatA.Seat() != game.PlayerA || seatB.Seat() != game.PlayerB {
		panic(fmt.Sprintf("seats do not match: got %s and %s", seatA.Seat(), seatB.Seat()))
	}
	s := &Session{ // Default values
		state:   game.NewState(size),
		seats:   [2]agent.Agent{seatA, seatB},
		rewards: DefaultRewards(),
		eta:     0.1,
		gamma:   0.9,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Session) State() game.State {
	return s.state
}

// Run plays one game with exploration rate epsilon and trains every learning
// seat: one update per move, then one terminal correction from Backprop.
func (s *Session) Run(rng *rand.Rand, epsilon float64) (Result, error) {
	return s.play(rng, epsilon, true)
}

// Evaluate plays one greedy game without touching any value table.
func (s *Session) Evaluate(rng *rand.Rand) (Result, error) {
	return s.play(rng, 0, false)
}

func (s *Session) play(rng *rand.Rand, epsilon float64, learn bool) (Result, error) {
	defer s.state.Reset()

	state := s.state
	trajectory := NewTrajectory(state)
	var deferred [2]*pending

	for !state.Terminal() {
		mover := state.OnPlay()
		action := s.seats[mover.Index()].FindMove(state, rng, epsilon)
		if action.Player != mover {
			return Result{}, fmt.Errorf("%w: %s moved while %s on play", game.ErrIllegalMove, action.Player, mover)
		}
		next, err := state.Play(action)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", s.seats[mover.Index()].Seat(), err)
		}
		trajectory.Append(action, next)
		if s.trace {
			log.Debug().Msgf("ply %d: %s\n%s", len(trajectory.Actions), action, next)
		}

		if learn {
			reward := s.rewards.Immediate(next.CheckWinner(), mover)
			if learner, ok := s.seats[mover.Index()].(agent.Learner); ok {
				if s.bootstrap == BootstrapReply && !next.Terminal() {
					deferred[mover.Index()] = &pending{prev: state, action: action, reward: reward}
				} else {
					learner.UpdateQ(state, next, action, reward, s.eta, s.gamma)
				}
			}
			// The reply completes the opponent's deferred transition.
			other := mover.Other().Index()
			if p := deferred[other]; p != nil {
				s.seats[other].(agent.Learner).UpdateQ(p.prev, next, p.action, p.reward, s.eta, s.gamma)
				deferred[other] = nil
			}
		}
		state = next
		s.state = next
	}

	winner := state.CheckWinner()
	result := Result{
		Winner:     winner,
		Plies:      len(trajectory.Actions),
		Trajectory: trajectory,
	}
	if !learn {
		return result, nil
	}

	correction, err := Backprop(trajectory)
	if err != nil {
		return result, err
	}
	if learner, ok := s.seats[correction.Action.Player.Index()].(agent.Learner); ok {
		reward := s.rewards.Outcome(winner, correction.Action.Player)
		learner.UpdateQ(correction.Prev, correction.State, correction.Action, reward, s.eta, s.gamma)
	}
	return result, nil
}
