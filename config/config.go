package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"qttt/engine"
	"qttt/game"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	OpponentAgent    = "agent"
	OpponentRandom   = "random"
	OpponentScripted = "scripted"
)

type Config struct {
	LogLevel  string   `yaml:"log-level" json:"log_level" env:"QTTT_LOG_LEVEL"`
	LogFormat string   `yaml:"log-format" json:"log_format" env:"QTTT_LOG_FORMAT"`
	OutputDir string   `yaml:"output-dir" json:"output_dir" env:"QTTT_OUTPUT_DIR"`
	Board     Board    `yaml:"board" json:"board"`
	Training  Training `yaml:"training" json:"training"`
	Rewards   Rewards  `yaml:"rewards" json:"rewards"`
}

type Board struct {
	Rows int `yaml:"rows" json:"rows" env:"QTTT_ROWS"`
	Cols int `yaml:"cols" json:"cols" env:"QTTT_COLS"`
}

type Training struct {
	Epochs        int     `yaml:"epochs" json:"epochs" env:"QTTT_EPOCHS"`
	GamesPerEpoch int     `yaml:"games-per-epoch" json:"games_per_epoch" env:"QTTT_GAMES_PER_EPOCH"`
	Epsilon       float64 `yaml:"epsilon" json:"epsilon" env:"QTTT_EPSILON"`
	DecayStep     float64 `yaml:"epsilon-decay-step" json:"epsilon_decay_step" env:"QTTT_EPSILON_DECAY_STEP"`
	DecayEvery    int     `yaml:"epsilon-decay-every" json:"epsilon_decay_every" env:"QTTT_EPSILON_DECAY_EVERY"`
	Eta           float64 `yaml:"eta" json:"eta" env:"QTTT_ETA"`
	Gamma         float64 `yaml:"gamma" json:"gamma" env:"QTTT_GAMMA"`
	Seed          uint64  `yaml:"seed" json:"seed" env:"QTTT_SEED"`
	EvalGames     int     `yaml:"eval-games" json:"eval_games" env:"QTTT_EVAL_GAMES"`
	Opponent      string  `yaml:"opponent" json:"opponent" env:"QTTT_OPPONENT"`
	LearnerSeat   string  `yaml:"learner-seat" json:"learner_seat" env:"QTTT_LEARNER_SEAT"`
	Bootstrap     string  `yaml:"bootstrap" json:"bootstrap" env:"QTTT_BOOTSTRAP"`
	RecordGames   bool    `yaml:"record-games" json:"record_games" env:"QTTT_RECORD_GAMES"`
	Trace         bool    `yaml:"trace" json:"trace" env:"QTTT_TRACE"`
}

type Rewards struct {
	Win         float64 `yaml:"win" json:"win"`
	Draw        float64 `yaml:"draw" json:"draw"`
	Step        float64 `yaml:"step" json:"step"`
	OutcomeWin  float64 `yaml:"outcome-win" json:"outcome_win"`
	OutcomeDraw float64 `yaml:"outcome-draw" json:"outcome_draw" env:"QTTT_OUTCOME_DRAW"`
	OutcomeLoss float64 `yaml:"outcome-loss" json:"outcome_loss"`
}

// Default returns the built-in configuration. Load starts from it, so a key
// missing from both the file and the environment keeps its default while an
// explicit zero is kept as zero.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		OutputDir: "runs",
		Board:     Board{Rows: 3, Cols: 3},
		Training: Training{
			Epochs:        16,
			GamesPerEpoch: 256,
			Epsilon:       0.1,
			DecayEvery:    1,
			Eta:           0.1,
			Gamma:         0.9,
			Seed:          1,
			Opponent:      OpponentAgent,
			LearnerSeat:   "A",
			Bootstrap:     "move",
		},
		Rewards: Rewards{
			Win:         1,
			Draw:        0.5,
			OutcomeWin:  -0.5,
			OutcomeDraw: 0.5,
			OutcomeLoss: -0.5,
		},
	}
}

// Load reads the YAML file at path with environment overrides, or only the
// environment when path is empty. The result is validated.
func Load(path string) (*Config, error) {
	config := Default()

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (c *Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("%w: board %dx%d must have positive dimensions", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	}
	if c.Board.Rows*c.Board.Cols < 2 {
		return fmt.Errorf("%w: board needs at least 2 cells", ErrInvalidConfig)
	}
	return c.Training.Validate()
}

func (t Training) Validate() error {
	switch {
	case t.Epochs < 0:
		return fmt.Errorf("%w: epochs %d", ErrInvalidConfig, t.Epochs)
	case t.GamesPerEpoch <= 0:
		return fmt.Errorf("%w: games-per-epoch %d", ErrInvalidConfig, t.GamesPerEpoch)
	case t.Epsilon < 0 || t.Epsilon > 1:
		return fmt.Errorf("%w: epsilon %v outside [0, 1]", ErrInvalidConfig, t.Epsilon)
	case t.DecayStep < 0:
		return fmt.Errorf("%w: epsilon-decay-step %v", ErrInvalidConfig, t.DecayStep)
	case t.DecayEvery < 1:
		return fmt.Errorf("%w: epsilon-decay-every %d", ErrInvalidConfig, t.DecayEvery)
	case t.Eta <= 0:
		return fmt.Errorf("%w: eta %v must be positive", ErrInvalidConfig, t.Eta)
	case t.Gamma < 0 || t.Gamma > 1:
		return fmt.Errorf("%w: gamma %v outside [0, 1]", ErrInvalidConfig, t.Gamma)
	case t.EvalGames < 0:
		return fmt.Errorf("%w: eval-games %d", ErrInvalidConfig, t.EvalGames)
	}

	switch t.Opponent {
	case OpponentAgent, OpponentRandom, OpponentScripted:
	default:
		return fmt.Errorf("%w: opponent %q", ErrInvalidConfig, t.Opponent)
	}
	if _, err := game.ParseSeat(t.LearnerSeat); err != nil {
		return fmt.Errorf("%w: learner-seat: %v", ErrInvalidConfig, err)
	}
	if _, err := engine.ParseBootstrap(t.Bootstrap); err != nil {
		return fmt.Errorf("%w: bootstrap: %v", ErrInvalidConfig, err)
	}
	return nil
}
