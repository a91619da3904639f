package shooters

import "errors"

var (
	ErrShooterNotFound     = errors.New("shooter not found")
	ErrNoComparableMetrics = errors.New("analysis has no metrics matching shooter benchmarks")
)
