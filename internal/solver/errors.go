package solver

import "errors"

var (
	// ErrTimeSpan indicates t_max does not exceed t_start.
	ErrTimeSpan = errors.New("solver: t_max must exceed t_start")

	// ErrSampleCount indicates fewer than two requested output points.
	ErrSampleCount = errors.New("solver: num_iters must be at least 2")

	// ErrPrecursorIndex indicates a precursor group index outside 1..6.
	ErrPrecursorIndex = errors.New("solver: precursor group index out of range")
)
