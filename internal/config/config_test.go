package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultBuildsValidProblem(t *testing.T) {
	cfg := Default()

	p, err := cfg.BuildProblem()
	if err != nil {
		t.Fatalf("BuildProblem failed: %v", err)
	}

	if p.Coefficients.TotalBeta != 0.0075 {
		t.Errorf("total beta: expected 0.0075, got %v", p.Coefficients.TotalBeta)
	}
	if p.NumIters < 2 {
		t.Errorf("default num_iters must be usable, got %d", p.NumIters)
	}
	if p.TMax <= p.TStart {
		t.Errorf("default time span invalid: [%v, %v]", p.TStart, p.TMax)
	}
}

func TestBuildProblemVectorLengths(t *testing.T) {
	cfg := Default()
	cfg.Coefficients.BetaVector = []float64{1, 2, 3}

	if _, err := cfg.BuildProblem(); err == nil {
		t.Error("expected error for short beta vector")
	}
}

func TestBuildRule(t *testing.T) {
	cases := []struct {
		rule    string
		wantErr bool
	}{
		{"", false},
		{"none", false},
		{"constant", false},
		{"schedule", false},
		{"pid", false},
		{"bang-bang", true},
	}
	for _, c := range cases {
		cfg := Default()
		cfg.Control.Rule = c.rule
		_, err := cfg.BuildRule()
		if (err != nil) != c.wantErr {
			t.Errorf("rule %q: err=%v, wantErr=%v", c.rule, err, c.wantErr)
		}
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := Preset(name)
		if cfg == nil {
			t.Fatalf("preset %q: nil config", name)
		}
		if _, err := cfg.BuildProblem(); err != nil {
			t.Errorf("preset %q: BuildProblem failed: %v", name, err)
		}
	}

	if Preset("scram-test") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := Preset("drum-sweep")
	cfg.TMax = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.TMax != 42 {
		t.Errorf("t_max: expected 42, got %v", loaded.TMax)
	}
	if loaded.Control.Rule != "schedule" {
		t.Errorf("rule: expected schedule, got %q", loaded.Control.Rule)
	}
	if len(loaded.Control.Segments) != 3 {
		t.Errorf("segments: expected 3, got %d", len(loaded.Control.Segments))
	}
}
