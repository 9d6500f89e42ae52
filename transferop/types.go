// Package transferop defines options and sentinel errors for transfer
// operator estimation.
package transferop

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for transfer-operator estimation.
var (
	// ErrNilRand indicates options without a rand source; the power
	// iteration start vector (and the random boundary policy) need one.
	ErrNilRand = errors.New("transferop: options require a rand source")
	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("transferop: tolerance must be positive")
	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("transferop: iteration cap must be positive")
	// ErrNoVisitedBins indicates no trajectory point fell inside the
	// binning, leaving an empty state space.
	ErrNoVisitedBins = errors.New("transferop: no trajectory point falls inside the binning")
)

// Boundary selects the image of a trajectory point whose true successor
// is unknown: the globally-last one, and any point whose successor falls
// outside the binning.
//
//   - BoundaryCircular — wrap to the bin of the trajectory's first
//     in-range point, treating the trajectory as circular. Deterministic.
//   - BoundaryRandom   — route to a uniformly random visited bin, drawn
//     from the injected rand source.
//
// Neither policy is "more correct"; expose the choice to the caller.
type Boundary int

const (
	// BoundaryCircular wraps the last point to the first point's bin.
	BoundaryCircular Boundary = iota
	// BoundaryRandom routes the last point to a random visited bin.
	BoundaryRandom
)

// Options configures transfer-operator estimation.
//
// Fields:
//   - Boundary  — image policy for points without an in-range successor.
//   - Tolerance — relative-change threshold stopping the power iteration.
//   - MaxIter   — iteration cap; reaching it returns the best-effort ρ
//     rather than an error.
//   - Rand      — source for the random start vector and BoundaryRandom.
type Options struct {
	Boundary  Boundary
	Tolerance float64
	MaxIter   int
	Rand      *rand.Rand
}

// DefaultOptions returns the circular boundary, tolerance 1e-8, cap 200,
// and a time-seeded rand source. This is the only seeding point in the
// package; inject a seeded source for reproducible runs.
func DefaultOptions() Options {
	return Options{
		Boundary:  BoundaryCircular,
		Tolerance: 1e-8,
		MaxIter:   200,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
