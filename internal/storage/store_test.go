package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/reaktor/internal/reactor"
	"github.com/san-kum/reaktor/internal/solver"
)

func rampSolution(n int) *solver.Solution {
	ts := make([]float64, n)
	grid := mat.NewDense(n, reactor.StateDim, nil)
	for i := 0; i < n; i++ {
		ts[i] = 0.1 * float64(i)
		s := reactor.State{
			NeutronPopulation:  4000 + 17.25*float64(i),
			PrecursorDensities: [6]float64{5000, 6000, 5600, 4700, 7800, 6578},
			TempMod:            630,
			TempFuel:           780 + float64(i),
			DrumAngle:          77.5,
			RhoConDrum:         0.00125,
		}
		grid.SetRow(i, s.ToArray())
	}
	return solver.NewSolution(ts, grid)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	sol := rampSolution(5)
	runID, err := store.Save("steady", "none", sol, map[string]float64{"peak_power": 4069})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Len() != sol.Len() {
		t.Fatalf("expected %d samples, got %d", sol.Len(), loaded.Len())
	}

	for i := 0; i < sol.Len(); i++ {
		if loaded.At(i) != sol.At(i) {
			t.Errorf("sample %d: %+v != %+v", i, loaded.At(i), sol.At(i))
		}
		if math.Abs(loaded.T()[i]-sol.T()[i]) > 0 {
			t.Errorf("time %d mismatch", i)
		}
	}
}

func TestListAndMeta(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runID, err := store.Save("drum-sweep", "schedule", rampSolution(3), nil)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("expected one run %s, got %+v", runID, runs)
	}

	meta, err := store.Meta(runID)
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}
	if meta.Scenario != "drum-sweep" || meta.Rule != "schedule" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.NumIters != 3 {
		t.Errorf("expected 3 samples, got %d", meta.NumIters)
	}
}

func TestListEmpty(t *testing.T) {
	store := New(t.TempDir() + "/missing")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("List on missing dir should not error, got %v", err)
	}
	if runs != nil {
		t.Errorf("expected no runs, got %+v", runs)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	sol := rampSolution(4)

	if err := ExportJSON(&buf, RunMetadata{ID: "steady_1"}, sol); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if data.Samples != 4 {
		t.Errorf("expected 4 samples, got %d", data.Samples)
	}
	if len(data.Series["power"]) != 4 {
		t.Errorf("power series wrong length: %d", len(data.Series["power"]))
	}
	if data.Series["power"][0] != 4000 {
		t.Errorf("power[0]: expected 4000, got %v", data.Series["power"][0])
	}
}
