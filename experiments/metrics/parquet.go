package metrics

import (
	"fmt"
	"os"
	"qttt/game"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const (
	EpochsParquetFile = "epochs.parquet"
	GamesParquetFile  = "games.parquet"
)

type EpochRow struct {
	Epoch       int32   `parquet:"epoch"`
	Evaluation  bool    `parquet:"evaluation"`
	GamesPlayed int32   `parquet:"games_played"`
	WinsA       int32   `parquet:"wins_a"`
	WinsB       int32   `parquet:"wins_b"`
	Draws       int32   `parquet:"draws"`
	Epsilon     float64 `parquet:"epsilon"`
	TableSizeA  int64   `parquet:"table_size_a"`
	TableSizeB  int64   `parquet:"table_size_b"`
	DurationMs  int64   `parquet:"duration_ms"`
}

// GameRecord is one finished game. Moves are stored as parallel coordinate
// columns in play order; the first move always belongs to PlayerA.
type GameRecord struct {
	Epoch     int32   `parquet:"epoch"`
	Game      int32   `parquet:"game"`
	Rows      int32   `parquet:"rows"`
	Cols      int32   `parquet:"cols"`
	Winner    string  `parquet:"winner,dict"`
	MoveX     []int32 `parquet:"move_x"`
	MoveY     []int32 `parquet:"move_y"`
	FinalHash int64   `parquet:"final_hash"`
}

func NewGameRecord(epoch, index int, winner game.Cell, actions []game.Action, final game.State) GameRecord {
	size := final.Size()
	record := GameRecord{
		Epoch:     int32(epoch),
		Game:      int32(index),
		Rows:      int32(size.X),
		Cols:      int32(size.Y),
		Winner:    winner.String(),
		MoveX:     make([]int32, len(actions)),
		MoveY:     make([]int32, len(actions)),
		FinalHash: int64(final.Hash()),
	}
	for i, a := range actions {
		record.MoveX[i] = int32(a.Position.X)
		record.MoveY[i] = int32(a.Position.Y)
	}
	return record
}

func (w *Writer) WriteEpochsParquet(results []EpochResult) error {
	rows := make([]EpochRow, len(results))
	for i, r := range results {
		rows[i] = EpochRow{
			Epoch:       int32(r.Epoch),
			Evaluation:  r.Evaluation,
			GamesPlayed: int32(r.GamesPlayed),
			WinsA:       int32(r.WinsA),
			WinsB:       int32(r.WinsB),
			Draws:       int32(r.Draws),
			Epsilon:     r.Epsilon,
			TableSizeA:  int64(r.TableSizeA),
			TableSizeB:  int64(r.TableSizeB),
			DurationMs:  r.Duration.Milliseconds(),
		}
	}
	return writeParquet(w.Path(EpochsParquetFile), rows, "epoch_result_v1")
}

func (w *Writer) WriteGamesParquet(records []GameRecord) error {
	return writeParquet(w.Path(GamesParquetFile), records, "game_record_v1")
}

// writeParquet writes to a temp file and renames it into place.
func writeParquet[T any](outPath string, rows []T, schema string) error {
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
