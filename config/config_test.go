package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults from the environment only", func(t *testing.T) {
		config, err := Load("")

		require.NoError(t, err)
		require.Equal(t, "info", config.LogLevel)
		require.Equal(t, Board{Rows: 3, Cols: 3}, config.Board)
		require.Equal(t, 0.1, config.Training.Epsilon)
		require.Equal(t, 0.9, config.Training.Gamma)
		require.Equal(t, OpponentAgent, config.Training.Opponent)
		require.Equal(t, -0.5, config.Rewards.OutcomeLoss)
		require.Equal(t, -0.5, config.Rewards.OutcomeWin)
		require.Equal(t, Default(), config)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeConfig(t, `
board:
  rows: 4
  cols: 5
training:
  epochs: 2
  games-per-epoch: 10
  epsilon: 0.3
  seed: 99
  opponent: scripted
  learner-seat: B
  bootstrap: reply
rewards:
  outcome-draw: 0.25
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, Board{Rows: 4, Cols: 5}, config.Board)
		require.Equal(t, 2, config.Training.Epochs)
		require.Equal(t, 0.3, config.Training.Epsilon)
		require.Equal(t, uint64(99), config.Training.Seed)
		require.Equal(t, OpponentScripted, config.Training.Opponent)
		require.Equal(t, "B", config.Training.LearnerSeat)
		require.Equal(t, "reply", config.Training.Bootstrap)
		require.Equal(t, 0.25, config.Rewards.OutcomeDraw)
		require.Equal(t, 0.1, config.Training.Eta, "Unset fields should take defaults")
	})

	t.Run("explicit zeros are kept", func(t *testing.T) {
		path := writeConfig(t, `
training:
  epsilon: 0
  gamma: 0
rewards:
  outcome-draw: 0
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Zero(t, config.Training.Epsilon)
		require.Zero(t, config.Training.Gamma)
		require.Zero(t, config.Rewards.OutcomeDraw)
		require.Equal(t, 0.1, config.Training.Eta, "Missing keys keep their defaults")
		require.Equal(t, -0.5, config.Rewards.OutcomeWin)
	})

	t.Run("explicit zero from the environment", func(t *testing.T) {
		t.Setenv("QTTT_EPSILON", "0")

		config, err := Load("")

		require.NoError(t, err)
		require.Zero(t, config.Training.Epsilon)
		require.Equal(t, 0.9, config.Training.Gamma)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "training:\n  epochs: 2\n")
		t.Setenv("QTTT_EPOCHS", "7")

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 7, config.Training.Epochs)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "training:\n  opponent: human\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		config, err := Load("")
		require.NoError(t, err)
		return config
	}

	cases := map[string]func(c *Config){
		"single cell board":  func(c *Config) { c.Board = Board{Rows: 1, Cols: 1} },
		"negative rows":      func(c *Config) { c.Board.Rows = -3 },
		"epsilon above one":  func(c *Config) { c.Training.Epsilon = 1.5 },
		"zero eta":           func(c *Config) { c.Training.Eta = 0 },
		"gamma above one":    func(c *Config) { c.Training.Gamma = 1.1 },
		"decay every zero":   func(c *Config) { c.Training.DecayEvery = 0 },
		"negative decay":     func(c *Config) { c.Training.DecayStep = -0.1 },
		"no games per epoch": func(c *Config) { c.Training.GamesPerEpoch = 0 },
		"unknown seat":       func(c *Config) { c.Training.LearnerSeat = "C" },
		"unknown bootstrap":  func(c *Config) { c.Training.Bootstrap = "later" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := valid()
			mutate(config)

			require.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}

	require.NoError(t, valid().Validate())
	for _, seat := range []string{"A", "b", "Player B"} {
		config := valid()
		config.Training.LearnerSeat = seat
		require.NoError(t, config.Validate(), "Seat %q should be accepted", seat)
	}
	config := valid()
	config.Board = Board{Rows: 1, Cols: 2}
	require.NoError(t, config.Validate(), "Two cells are enough")
}
