// Package plot renders epoch tallies as an HTML line chart.
package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"qttt/experiments/metrics"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const ChartFile = "chart.html"

var ErrNoResults = errors.New("no results to plot")

// Render writes a page with one chart: wins of A, wins of B and draws per
// thousand games for every epoch. Evaluation batches are labelled "eval".
func Render(w io.Writer, title string, results []metrics.EpochResult) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d games", totalGames(results)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "epoch"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "per mille"}),
	)

	epochs := make([]string, 0, len(results))
	winsA := make([]opts.LineData, 0, len(results))
	winsB := make([]opts.LineData, 0, len(results))
	draws := make([]opts.LineData, 0, len(results))
	for _, r := range results {
		label := strconv.Itoa(r.Epoch)
		if r.Evaluation {
			label = "eval"
		}
		epochs = append(epochs, label)

		a, b, d := r.PerMille()
		winsA = append(winsA, opts.LineData{Value: a})
		winsB = append(winsB, opts.LineData{Value: b})
		draws = append(draws, opts.LineData{Value: d})
	}

	line = line.SetXAxis(epochs).
		AddSeries("wins A", winsA).
		AddSeries("wins B", winsB).
		AddSeries("draws", draws)

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func RenderFile(path, title string, results []metrics.EpochResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return Render(f, title, results)
}

func totalGames(results []metrics.EpochResult) int {
	total := 0
	for _, r := range results {
		total += r.GamesPlayed
	}
	return total
}
