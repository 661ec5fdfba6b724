// Package storage persists finished runs: a metadata.json and a
// solution.csv with physics-named columns per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/reaktor/internal/reactor"
	"github.com/san-kum/reaktor/internal/solver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	TStart    float64            `json:"t_start"`
	TMax      float64            `json:"t_max"`
	NumIters  int                `json:"num_iters"`
	Rule      string             `json:"rule"`
	Metrics   map[string]float64 `json:"metrics"`
}

var csvHeader = append([]string{"time"}, solver.SeriesNames()...)

// Save writes one run and returns its generated ID.
func (s *Store) Save(scenario, rule string, sol *solver.Solution, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	ts := sol.T()
	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		TStart:    ts[0],
		TMax:      ts[len(ts)-1],
		NumIters:  sol.Len(),
		Rule:      rule,
		Metrics:   metrics,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "solution.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	row := make([]string, 1+reactor.StateDim)
	for i := 0; i < sol.Len(); i++ {
		row[0] = formatFloat(ts[i])
		state := sol.At(i).ToArray()
		for j, v := range state {
			row[1+j] = formatFloat(v)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata of all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// Load rebuilds a run's Solution from its CSV.
func (s *Store) Load(runID string) (*solver.Solution, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "solution.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("storage: run %s has no samples", runID)
	}

	rows := len(records) - 1
	ts := make([]float64, rows)
	grid := mat.NewDense(rows, reactor.StateDim, nil)

	for i, rec := range records[1:] {
		if len(rec) != 1+reactor.StateDim {
			return nil, fmt.Errorf("storage: run %s row %d has %d columns", runID, i, len(rec))
		}
		if ts[i], err = strconv.ParseFloat(rec[0], 64); err != nil {
			return nil, err
		}
		for j := 0; j < reactor.StateDim; j++ {
			v, err := strconv.ParseFloat(rec[1+j], 64)
			if err != nil {
				return nil, err
			}
			grid.Set(i, j, v)
		}
	}

	return solver.NewSolution(ts, grid), nil
}

// Meta loads a single run's metadata.
func (s *Store) Meta(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}
