package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	EpochsFile = "epochs.csv"
	ConfigFile = "config.json"
)

// Writer stores the outputs of one run under <outputDir>/<runID>.
type Writer struct {
	baseDir string
}

func NewWriter(outputDir, runID string) (*Writer, error) {
	baseDir := filepath.Join(outputDir, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) Path(name string) string {
	return filepath.Join(w.baseDir, name)
}

func (w *Writer) WriteEpochs(results []EpochResult) error {
	f, err := os.Create(w.Path(EpochsFile))
	if err != nil {
		return fmt.Errorf("failed to create epochs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"epoch", "evaluation", "games_played", "wins_a", "wins_b", "draws",
		"epsilon", "table_size_a", "table_size_b", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write epochs header: %w", err)
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Epoch),
			strconv.FormatBool(r.Evaluation),
			strconv.Itoa(r.GamesPlayed),
			strconv.Itoa(r.WinsA),
			strconv.Itoa(r.WinsB),
			strconv.Itoa(r.Draws),
			strconv.FormatFloat(r.Epsilon, 'f', -1, 64),
			strconv.Itoa(r.TableSizeA),
			strconv.Itoa(r.TableSizeB),
			r.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write epoch row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush epochs: %w", err)
	}
	return nil
}

// WriteConfig snapshots the run configuration as indented JSON.
func (w *Writer) WriteConfig(config any) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(w.Path(ConfigFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
