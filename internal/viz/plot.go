// Package viz renders solution series in the terminal.
package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// SeriesLabels maps series names to axis labels.
var SeriesLabels = map[string]string{
	"power":         "Power [W]",
	"c1":            "Precursor density c1",
	"c2":            "Precursor density c2",
	"c3":            "Precursor density c3",
	"c4":            "Precursor density c4",
	"c5":            "Precursor density c5",
	"c6":            "Precursor density c6",
	"temp_mod":      "Moderator temperature [K]",
	"temp_fuel":     "Fuel temperature [K]",
	"rho_fuel_temp": "Fuel temperature reactivity [dk]",
	"rho_mod_temp":  "Moderator temperature reactivity [dk]",
	"drum_angle":    "Drum angle [deg]",
	"rho_con_drum":  "Control drum reactivity [dk]",
}

// RenderSeries plots one time series as an ASCII chart.
func RenderSeries(ts, ys []float64, name string) string {
	label := SeriesLabels[name]
	if label == "" {
		label = name
	}
	caption := fmt.Sprintf("%s  (t = %g .. %g s)", label, ts[0], ts[len(ts)-1])

	chart := asciigraph.Plot(ys,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	return titleStyle.Render(name) + "\n" + graphStyle.Render(chart)
}

// RenderDrumWorth plots control drum reactivity against drum angle
// rather than time. Angles come from the sampled trajectory, so the
// curve traces the worth actually inserted over the run.
func RenderDrumWorth(angles, rhos []float64) string {
	caption := fmt.Sprintf("Control drum reactivity [dk]  (angle = %g .. %g deg)",
		angles[0], angles[len(angles)-1])

	chart := asciigraph.Plot(rhos,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	return titleStyle.Render("drum_worth") + "\n" + graphStyle.Render(chart)
}

// RenderSummary formats run metrics as an aligned key/value block.
func RenderSummary(metrics map[string]float64) string {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(labelStyle.Render(k))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.6g", metrics[k])))
		b.WriteString("\n")
	}
	return b.String()
}
