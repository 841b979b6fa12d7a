package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"qttt/config"
	"qttt/experiments"
	"qttt/experiments/metrics"
	"qttt/experiments/plot"
	"qttt/progress"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (environment only when empty)")
	tui := flag.Bool("tui", false, "Show live epoch tallies in the terminal")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}
	cfg := config.MustLoad(*configPath)
	setupLogging(cfg, *tui)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *tui); err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}
}

func setupLogging(cfg *config.Config, tui bool) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch {
	case tui:
		// The progress view owns the terminal.
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).Level(zerolog.WarnLevel)
	case cfg.LogFormat == "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func run(ctx context.Context, cfg *config.Config, tui bool) error {
	runID := uuid.NewString()
	writer, err := metrics.NewWriter(cfg.OutputDir, runID)
	if err != nil {
		return err
	}
	if err := writer.WriteConfig(cfg); err != nil {
		return err
	}
	log.Info().Str("run", runID).Msgf("writing results to %s", writer.Dir())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var options []experiments.Option
	var viewDone chan error
	if tui {
		updates := make(chan metrics.EpochResult, cfg.Training.Epochs+1)
		options = append(options, experiments.WithObserver(func(r metrics.EpochResult) {
			updates <- r
		}))
		viewDone = make(chan error, 1)
		go func() {
			aborted, err := progress.Run(updates, cfg.Training.Epochs)
			if aborted {
				cancel()
			}
			viewDone <- err
		}()
		defer func() {
			close(updates)
			if err := <-viewDone; err != nil {
				log.Error().Err(err).Msg("progress view failed")
			}
		}()
	}

	trainer, err := experiments.NewTrainer(cfg, options...)
	if err != nil {
		return err
	}
	report, runErr := trainer.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if runErr != nil {
		log.Warn().Msgf("training interrupted after %d epochs", len(report.Epochs))
	}

	if err := writer.WriteEpochs(report.Epochs); err != nil {
		return err
	}
	if err := writer.WriteEpochsParquet(report.Epochs); err != nil {
		return err
	}
	if cfg.Training.RecordGames {
		if err := writer.WriteGamesParquet(report.Games); err != nil {
			return err
		}
	}
	if len(report.Epochs) > 0 {
		title := fmt.Sprintf("%dx%d learner %s vs %s", cfg.Board.Rows, cfg.Board.Cols, cfg.Training.LearnerSeat, cfg.Training.Opponent)
		if err := plot.RenderFile(writer.Path(plot.ChartFile), title, report.Epochs); err != nil {
			return err
		}
	}

	log.Info().Str("run", runID).Msgf("stored %d epoch results", len(report.Epochs))
	return nil
}
