package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/rondo/ils"
)

// Color palette shared by all human-facing output.
var (
	colorCyan   = lipgloss.Color("36")  // headings
	colorGreen  = lipgloss.Color("35")  // success / best values
	colorYellow = lipgloss.Color("220") // warnings
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue   = lipgloss.NewStyle().Foreground(colorGreen)
	styleMuted   = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// row renders one "label: value" line of the summary panel.
func row(label, value string) string {
	return styleLabel.Render(label) + styleValue.Render(value)
}

// formatTour renders a tour as a space-separated index sequence, truncated
// in the middle when it would not fit a terminal line.
func formatTour(t []int) string {
	const shown = 16
	parts := make([]string, 0, len(t))
	for _, c := range t {
		parts = append(parts, fmt.Sprintf("%d", c))
	}
	if len(parts) <= shown {
		return strings.Join(parts, " ")
	}
	head := strings.Join(parts[:shown/2], " ")
	tail := strings.Join(parts[len(parts)-shown/2:], " ")
	return head + styleMuted.Render(" … ") + tail
}

// renderRun builds the summary panel of a single ILS run.
func renderRun(title string, res ils.RunResult) string {
	lines := []string{
		styleTitle.Render(title),
		row("best cost", fmt.Sprintf("%.6f", res.BestCost)),
		row("iterations", fmt.Sprintf("%d", res.Iterations)),
		row("evaluations", fmt.Sprintf("%d", res.Evaluations)),
		row("elapsed", res.Elapsed.Round(time.Millisecond).String()),
		row("tour", formatTour(res.BestTour)),
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}

// renderMulti builds the summary panel of a parallel multi-start run,
// including the dispersion of the workers' best costs.
func renderMulti(title string, res ils.MultiResult) string {
	workers := fmt.Sprintf("%d completed", res.Completed)
	if res.Failed > 0 {
		workers += styleWarning.Render(fmt.Sprintf(", %d failed", res.Failed))
	}

	lines := []string{
		styleTitle.Render(title),
		row("best cost", fmt.Sprintf("%.6f", res.Best.BestCost)),
		row("workers", workers),
		row("cost mean", fmt.Sprintf("%.6f", res.CostMean)),
		row("cost stddev", fmt.Sprintf("%.6f", res.CostStdDev)),
		row("iterations", fmt.Sprintf("%d", res.Best.Iterations)),
		row("elapsed", res.Best.Elapsed.Round(time.Millisecond).String()),
		row("tour", formatTour(res.Best.BestTour)),
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}
