// Package progress shows live epoch tallies in the terminal while training
// runs in another goroutine.
package progress

import (
	"fmt"
	"qttt/experiments/metrics"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const recentEpochs = 10

// doneMsg signals that the update channel was closed.
type doneMsg struct{}

type Model struct {
	epochs    int
	completed int
	total     metrics.EpochResult
	recent    []string
	startTime time.Time
	updates   <-chan metrics.EpochResult
	Aborted   bool
}

// New returns a view of a run with the given number of training epochs.
func New(updates <-chan metrics.EpochResult, epochs int) Model {
	return Model{
		epochs:    epochs,
		startTime: time.Now(),
		updates:   updates,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func waitForUpdate(updates <-chan metrics.EpochResult) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return result
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.Aborted = true
			return m, tea.Quit
		}
	case metrics.EpochResult:
		if !msg.Evaluation {
			m.completed++
			m.total = m.total.Add(msg)
		}
		a, b, d := msg.PerMille()
		kind := "epoch"
		if msg.Evaluation {
			kind = "eval "
		}
		line := fmt.Sprintf("%s %4d  eps %.3f  A %4.0f  B %4.0f  draw %4.0f  (per mille)", kind, msg.Epoch, msg.Epsilon, a, b, d)
		m.recent = append([]string{line}, m.recent...)
		if len(m.recent) > recentEpochs {
			m.recent = m.recent[:recentEpochs]
		}
		return m, waitForUpdate(m.updates)
	case doneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Epochs:       %d / %d\n", m.completed, m.epochs)
	fmt.Fprintf(&sb, "Games Played: %d\n", m.total.GamesPlayed)
	fmt.Fprintf(&sb, "Wins A:       %d\n", m.total.WinsA)
	fmt.Fprintf(&sb, "Wins B:       %d\n", m.total.WinsB)
	fmt.Fprintf(&sb, "Draws:        %d\n", m.total.Draws)
	fmt.Fprintf(&sb, "Duration:     %s\n\n", time.Since(m.startTime).Round(time.Second))

	sb.WriteString("Recent Epochs:\n")
	for _, line := range m.recent {
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nPress q to quit.\n")
	return sb.String()
}

// Run blocks until updates is closed or the user quits. It reports whether
// the user quit early.
func Run(updates <-chan metrics.EpochResult, epochs int) (bool, error) {
	final, err := tea.NewProgram(New(updates, epochs)).Run()
	if err != nil {
		return false, fmt.Errorf("progress view: %w", err)
	}
	return final.(Model).Aborted, nil
}
