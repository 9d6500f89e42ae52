// Package estimator defines the Estimator contract, its sentinel errors,
// and the generic pipeline entry points.
package estimator

import (
	"errors"

	"github.com/katalvlaran/probspace/outcome"
	"github.com/katalvlaran/probspace/prob"
)

// Estimator turns a histogram into a normalized probability vector,
// parallel to the histogram's outcomes.
//
// values is the histogram (true counts or pseudo-counts), n the
// encoded-space cardinality, countBased the capability flag of the
// producing space. Implementations that interpret values as sample counts
// must reject countBased == false with ErrNotCountBased.
type Estimator interface {
	Estimate(values []float64, n int, countBased bool) ([]float64, error)
}

// Sentinel errors for estimation.
var (
	// ErrNotCountBased indicates an estimator requiring true integer
	// counts received pseudo-counts.
	ErrNotCountBased = errors.New("estimator: requires a counting-based outcome space")
	// ErrDimensionMismatch indicates a prior/target vector whose length
	// differs from the outcome-set length.
	ErrDimensionMismatch = errors.New("estimator: prior/target length must equal the outcome-set length")
	// ErrBadPrior indicates a negative prior concentration.
	ErrBadPrior = errors.New("estimator: prior concentrations must be non-negative")
	// ErrBadTarget indicates a shrinkage target that is not a probability
	// distribution.
	ErrBadTarget = errors.New("estimator: shrinkage target must be a probability distribution")
	// ErrBadLambda indicates a fixed shrinkage intensity outside [0, 1].
	ErrBadLambda = errors.New("estimator: shrinkage intensity must lie in [0, 1]")
)

// Probabilities runs the observed-only pipeline: histogram xs over the
// outcomes seen in this sample, then regularize into a distribution whose
// support is exactly the observed outcome set.
func Probabilities[O any](e Estimator, sp outcome.Space[O], xs []float64) (prob.Probabilities[O], error) {
	c, err := sp.Counts(xs)
	if err != nil {
		return prob.Probabilities[O]{}, err
	}

	return FromCounts(e, c)
}

// AllProbabilities runs the all-outcomes pipeline: the histogram is
// aligned with the space's full alphabet, and unobserved outcomes receive
// whatever probability the estimator's regularization assigns them.
func AllProbabilities[O any](e Estimator, sp outcome.Space[O], xs []float64) (prob.Probabilities[O], error) {
	c, err := sp.AllCounts(xs)
	if err != nil {
		return prob.Probabilities[O]{}, err
	}

	return FromCounts(e, c)
}

// FromCounts regularizes an existing histogram. Use it to re-estimate
// under several estimators without re-counting, or with histograms from
// the vector entry points of concrete spaces.
func FromCounts[O any](e Estimator, c prob.Counts[O]) (prob.Probabilities[O], error) {
	p, err := e.Estimate(c.Values(), c.N(), c.CountBased())
	if err != nil {
		return prob.Probabilities[O]{}, err
	}

	return prob.NewProbabilities(p, c.Outcomes())
}
