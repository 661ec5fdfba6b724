package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/reaktor/internal/solver"
)

// ExportData is the flat JSON form of one run, for downstream plotting.
type ExportData struct {
	Meta    RunMetadata          `json:"meta"`
	Times   []float64            `json:"times"`
	Series  map[string][]float64 `json:"series"`
	Samples int                  `json:"samples"`
}

// ExportJSON writes a run's full trajectory as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, sol *solver.Solution) error {
	series := make(map[string][]float64, len(solver.SeriesNames()))
	for _, name := range solver.SeriesNames() {
		values, err := sol.Series(name)
		if err != nil {
			return err
		}
		series[name] = values
	}

	data := ExportData{
		Meta:    meta,
		Times:   sol.T(),
		Series:  series,
		Samples: sol.Len(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
