// Package outcome defines the Space contract, embedding helpers, and
// sentinel errors shared by all outcome spaces.
package outcome

import (
	"errors"

	"github.com/katalvlaran/probspace/prob"
)

// Space is the contract every outcome space satisfies. O is the outcome
// representation the space deals in: float64 for raw values, []int for
// ordinal or dispersion patterns, []float64 for bin corners.
type Space[O any] interface {
	// Counts converts a scalar series into a histogram over the outcomes
	// observed in this sample only.
	Counts(xs []float64) (prob.Counts[O], error)

	// AllCounts aligns the histogram with the full enumerated alphabet,
	// including zero-count outcomes. Spaces with a data-dependent alphabet
	// return the observed histogram unchanged.
	AllCounts(xs []float64) (prob.Counts[O], error)

	// TotalOutcomes returns the alphabet size in closed form where the
	// alphabet is static (m! for ordinal patterns, c^m for dispersion),
	// or ErrUnknownAlphabet where it depends on the data.
	TotalOutcomes() (int, error)

	// CountBased reports whether histogram values are true occurrence
	// counts. Weighted and spectral spaces yield pseudo-counts instead.
	CountBased() bool
}

// Sentinel errors for outcome-space construction and use.
var (
	// ErrBadLag indicates an embedding lag below 1.
	ErrBadLag = errors.New("outcome: embedding lag must be at least 1")
	// ErrShortSeries indicates a series too short to produce even one
	// delay vector at the configured (m, τ).
	ErrShortSeries = errors.New("outcome: series shorter than (m-1)*tau + 1")
	// ErrDimensionMismatch indicates pre-embedded input whose vector
	// dimensionality differs from the space's embedding dimension.
	ErrDimensionMismatch = errors.New("outcome: vector dimensionality does not match embedding dimension")
	// ErrUnknownAlphabet indicates a data-dependent alphabet with no
	// closed-form size.
	ErrUnknownAlphabet = errors.New("outcome: alphabet is data-dependent, no closed-form size")
)

// Embed constructs the delay-embedding of a scalar series: the sequence of
// m-dimensional vectors (x_i, x_{i+τ}, …, x_{i+(m-1)τ}) for
// i = 0 … N−(m−1)τ−1. The embedding truncates: a series of length N
// yields N−(m−1)τ vectors, which is why encoded-space cardinality differs
// from len(xs).
// Errors: prob.ErrEmptyData, ErrBadLag, ErrShortSeries.
// Complexity: O(N·m) time and memory.
func Embed(xs []float64, m, tau int) ([][]float64, error) {
	if len(xs) == 0 {
		return nil, prob.ErrEmptyData
	}
	if tau < 1 {
		return nil, ErrBadLag
	}
	span := (m - 1) * tau
	if len(xs) <= span {
		return nil, ErrShortSeries
	}
	vecs := make([][]float64, len(xs)-span)
	for i := range vecs {
		v := make([]float64, m)
		for k := 0; k < m; k++ {
			v[k] = xs[i+k*tau]
		}
		vecs[i] = v
	}

	return vecs, nil
}
