package metrics

import (
	"qttt/game"
	"time"
)

// EpochResult tallies one batch of games. GamesPlayed, WinsA, WinsB and Draws
// are the reported outcome tuple; the remaining fields describe the run.
type EpochResult struct {
	Epoch       int
	Evaluation  bool
	GamesPlayed int
	WinsA       int
	WinsB       int
	Draws       int
	Epsilon     float64
	TableSizeA  int
	TableSizeB  int
	Duration    time.Duration
}

// PerMille returns wins of A, wins of B and draws per thousand games.
func (r EpochResult) PerMille() (winsA, winsB, draws float64) {
	if r.GamesPlayed == 0 {
		return 0, 0, 0
	}
	n := float64(r.GamesPlayed)
	return 1000 * float64(r.WinsA) / n, 1000 * float64(r.WinsB) / n, 1000 * float64(r.Draws) / n
}

// Add merges the counters of other into r.
func (r EpochResult) Add(other EpochResult) EpochResult {
	r.GamesPlayed += other.GamesPlayed
	r.WinsA += other.WinsA
	r.WinsB += other.WinsB
	r.Draws += other.Draws
	r.Duration += other.Duration
	return r
}

type Collector interface {
	Start(epoch int, epsilon float64, evaluation bool)
	AddGame(winner game.Cell)
	Complete(tableSizeA, tableSizeB int) EpochResult
}

type collector struct {
	startTime time.Time
	result    EpochResult
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(epoch int, epsilon float64, evaluation bool) {
	m.startTime = time.Now()
	m.result = EpochResult{Epoch: epoch, Epsilon: epsilon, Evaluation: evaluation}
}

func (m *collector) AddGame(winner game.Cell) {
	m.result.GamesPlayed++
	switch winner {
	case game.PlayerA:
		m.result.WinsA++
	case game.PlayerB:
		m.result.WinsB++
	case game.Draw:
		m.result.Draws++
	}
}

func (m *collector) Complete(tableSizeA, tableSizeB int) EpochResult {
	m.result.TableSizeA = tableSizeA
	m.result.TableSizeB = tableSizeB
	m.result.Duration = time.Since(m.startTime)
	return m.result
}
