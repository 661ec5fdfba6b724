package control

import "github.com/san-kum/reaktor/internal/reactor"

// Segment is one leg of a drum maneuver: rotate at Speed until Until.
type Segment struct {
	Until float64 `yaml:"until"`
	Speed float64 `yaml:"speed"`
}

// Schedule plays back a piecewise-constant drum speed program. Past the
// last segment the drums stop.
type Schedule struct {
	Segments []Segment
}

func NewSchedule(segments ...Segment) *Schedule {
	return &Schedule{Segments: segments}
}

func (sc *Schedule) DrumSpeed(t float64, s reactor.State) float64 {
	for _, seg := range sc.Segments {
		if t < seg.Until {
			return seg.Speed
		}
	}
	return 0
}
