package viz

import (
	"strings"
	"testing"
)

func TestRenderSeriesUsesAxisLabel(t *testing.T) {
	ts := []float64{0, 0.5, 1}
	ys := []float64{1, 2, 4}

	out := RenderSeries(ts, ys, "power")
	if !strings.Contains(out, "Power [W]") {
		t.Errorf("expected axis label in output, got:\n%s", out)
	}
	if !strings.Contains(out, "t = 0 .. 1 s") {
		t.Errorf("expected time range in caption, got:\n%s", out)
	}
}

func TestRenderSeriesFallsBackToName(t *testing.T) {
	out := RenderSeries([]float64{0, 1}, []float64{1, 2}, "mystery")
	if !strings.Contains(out, "mystery") {
		t.Errorf("expected raw series name in output, got:\n%s", out)
	}
}

func TestRenderDrumWorthCaption(t *testing.T) {
	angles := []float64{0, 30, 60, 90}
	rhos := []float64{0, 0.001, 0.0035, 0.006}

	out := RenderDrumWorth(angles, rhos)
	if !strings.Contains(out, "angle = 0 .. 90 deg") {
		t.Errorf("expected angle range in caption, got:\n%s", out)
	}
	if !strings.Contains(out, "drum_worth") {
		t.Errorf("expected title in output, got:\n%s", out)
	}
}

func TestRenderSummarySortedKeys(t *testing.T) {
	out := RenderSummary(map[string]float64{
		"peak_power": 3e7,
		"energy":     1.5e8,
	})

	if strings.Index(out, "energy") > strings.Index(out, "peak_power") {
		t.Errorf("expected keys in sorted order, got:\n%s", out)
	}
	if !strings.Contains(out, "3e+07") {
		t.Errorf("expected formatted value, got:\n%s", out)
	}
}
