package estimator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/probspace/prob"
)

// RelativeAmount is the plug-in (maximum-likelihood) estimator:
// p_k = n_k / n with n the encoded-space cardinality.
//
// It is the one estimator that also accepts pseudo-count histograms
// (spectral energies, amplitude weights): those values are normalized by
// their own sum, never by a sample size, since they are not occurrence
// counts of anything.
type RelativeAmount struct{}

var _ Estimator = RelativeAmount{}

// Estimate implements Estimator.
// Errors: prob.ErrEmptyData when the histogram carries no mass.
// Complexity: O(k).
func (RelativeAmount) Estimate(values []float64, n int, countBased bool) ([]float64, error) {
	denom := float64(n)
	if !countBased {
		denom = floats.Sum(values)
	}
	if denom <= 0 {
		return nil, prob.ErrEmptyData
	}
	p := make([]float64, len(values))
	for i, v := range values {
		p[i] = v / denom
	}

	return p, nil
}
