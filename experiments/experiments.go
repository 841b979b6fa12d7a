package experiments

import (
	"context"
	"fmt"
	"qttt/agent"
	"qttt/config"
	"qttt/engine"
	"qttt/experiments/metrics"
	"qttt/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(t *Trainer)

// WithObserver is called with every completed epoch, evaluation included.
func WithObserver(observe func(metrics.EpochResult)) Option {
	return func(t *Trainer) {
		if observe != nil {
			t.observers = append(t.observers, observe)
		}
	}
}

type Report struct {
	Epochs []metrics.EpochResult
	Games  []metrics.GameRecord
}

// Trainer runs epochs of self-play between two seats built from config.
type Trainer struct {
	cfg       config.Training
	session   *engine.Session
	seats     [2]agent.Agent
	schedule  Schedule
	collector metrics.Collector
	observers []func(metrics.EpochResult)
}

func NewTrainer(cfg *config.Config, options ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := game.Vector2{X: cfg.Board.Rows, Y: cfg.Board.Cols}
	training := cfg.Training

	learnerSeat, err := game.ParseSeat(training.LearnerSeat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	bootstrap, err := engine.ParseBootstrap(training.Bootstrap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	var seats [2]agent.Agent
	seats[learnerSeat.Index()] = agent.NewQLearning(learnerSeat, size)
	opponentSeat := learnerSeat.Other()
	switch training.Opponent {
	case config.OpponentAgent:
		seats[opponentSeat.Index()] = agent.NewQLearning(opponentSeat, size)
	case config.OpponentRandom:
		seats[opponentSeat.Index()] = agent.NewRandom(opponentSeat, size)
	case config.OpponentScripted:
		seats[opponentSeat.Index()] = agent.NewScripted(opponentSeat, size)
	}

	rewards := engine.Rewards{
		Win:         cfg.Rewards.Win,
		Draw:        cfg.Rewards.Draw,
		Step:        cfg.Rewards.Step,
		OutcomeWin:  cfg.Rewards.OutcomeWin,
		OutcomeDraw: cfg.Rewards.OutcomeDraw,
		OutcomeLoss: cfg.Rewards.OutcomeLoss,
	}
	t := &Trainer{
		cfg: training,
		session: engine.NewSession(size, seats[0], seats[1],
			engine.WithRewards(rewards),
			engine.WithLearningRate(training.Eta),
			engine.WithDiscount(training.Gamma),
			engine.WithBootstrap(bootstrap),
			engine.WithTrace(training.Trace),
		),
		seats:     seats,
		schedule:  Schedule{Start: training.Epsilon, Step: training.DecayStep, Every: training.DecayEvery},
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t, nil
}

// Seat returns the agent playing seat.
func (t *Trainer) Seat(seat game.Cell) agent.Agent {
	return t.seats[seat.Index()]
}

// Run trains for the configured number of epochs, then plays the greedy
// evaluation batch if one is configured. Cancelling ctx stops between games
// and returns the epochs completed so far.
func (t *Trainer) Run(ctx context.Context) (Report, error) {
	rng := rand.New(rand.NewSource(t.cfg.Seed))
	report := Report{}

	log.Info().Msgf("starting training: %d epochs of %d games, opponent=%s learner=%s",
		t.cfg.Epochs, t.cfg.GamesPerEpoch, t.cfg.Opponent, t.cfg.LearnerSeat)

	epsilon := t.schedule.Start
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		result, err := t.batch(ctx, rng, &report, epoch, t.cfg.GamesPerEpoch, epsilon, false)
		if err != nil {
			return report, err
		}
		report.Epochs = append(report.Epochs, result)
		epsilon = t.schedule.Next(epoch, epsilon)
	}

	if t.cfg.EvalGames > 0 {
		result, err := t.batch(ctx, rng, &report, t.cfg.Epochs, t.cfg.EvalGames, 0, true)
		if err != nil {
			return report, err
		}
		report.Epochs = append(report.Epochs, result)
	}

	log.Info().Msgf("completed training after %d games", totalGames(report.Epochs))
	return report, nil
}

func (t *Trainer) batch(ctx context.Context, rng *rand.Rand, report *Report, epoch, games int, epsilon float64, evaluation bool) (metrics.EpochResult, error) {
	t.collector.Start(epoch, epsilon, evaluation)
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return metrics.EpochResult{}, fmt.Errorf("epoch %d stopped after %d games: %w", epoch, i, err)
		}

		var result engine.Result
		var err error
		if evaluation {
			result, err = t.session.Evaluate(rng)
		} else {
			result, err = t.session.Run(rng, epsilon)
		}
		if err != nil {
			return metrics.EpochResult{}, fmt.Errorf("epoch %d game %d: %w", epoch, i, err)
		}

		t.collector.AddGame(result.Winner)
		if t.cfg.RecordGames {
			final := result.Trajectory.States[len(result.Trajectory.States)-1]
			report.Games = append(report.Games, metrics.NewGameRecord(epoch, i, result.Winner, result.Trajectory.Actions, final))
		}
	}
	result := t.collector.Complete(t.tableSize(game.PlayerA), t.tableSize(game.PlayerB))

	winsA, winsB, draws := result.PerMille()
	log.Info().
		Int("epoch", epoch).
		Bool("evaluation", evaluation).
		Int("games", result.GamesPlayed).
		Int("wins_a", result.WinsA).
		Int("wins_b", result.WinsB).
		Int("draws", result.Draws).
		Float64("epsilon", epsilon).
		Dur("duration", result.Duration).
		Msgf("per mille: A %.0f, B %.0f, draw %.0f", winsA, winsB, draws)

	for _, observe := range t.observers {
		observe(result)
	}
	return result, nil
}

func (t *Trainer) tableSize(seat game.Cell) int {
	if learner, ok := t.seats[seat.Index()].(agent.Learner); ok {
		return learner.Table().Len()
	}
	return 0
}

func totalGames(results []metrics.EpochResult) int {
	total := 0
	for _, r := range results {
		total += r.GamesPlayed
	}
	return total
}
