package estimator

import (
	"fmt"

	"github.com/katalvlaran/probspace/prob"
)

// Bayes regularizes counts with a Dirichlet prior:
// p_k = (n_k + a_k) / (n + Σ_j a_j), the sum running over the outcome set
// being estimated (observed-only or full alphabet, depending on the entry
// point — the two modes differ for any nonzero prior).
//
// The prior is either the scalar concentration A applied uniformly, or a
// per-outcome Prior vector, which overrides A and must match the
// outcome-set length exactly.
//
// Special cases: A = 0 reduces to the plug-in estimate, A = 0.5 is the
// Jeffreys prior, A = 1 the Bayes–Laplace uniform prior.
type Bayes struct {
	// A is the scalar concentration added to every count. Ignored when
	// Prior is non-nil.
	A float64
	// Prior holds per-outcome concentrations; nil means "use A".
	Prior []float64
}

// DefaultBayes returns the Bayes–Laplace estimator, A = 1. This default is
// stated here, on the constructor — it is not an assumption baked into the
// estimation itself.
func DefaultBayes() Bayes { return Bayes{A: 1} }

var _ Estimator = Bayes{}

// Estimate implements Estimator.
// Errors: ErrNotCountBased for pseudo-count histograms, ErrBadPrior for
// negative concentrations, ErrDimensionMismatch when a Prior vector does
// not match the outcome-set length.
// Complexity: O(k).
func (b Bayes) Estimate(values []float64, n int, countBased bool) ([]float64, error) {
	if !countBased {
		return nil, fmt.Errorf("Bayes.Estimate: %w", ErrNotCountBased)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Bayes.Estimate(n=%d): %w", n, prob.ErrEmptyData)
	}

	// Resolve the per-outcome concentrations and their total.
	var total float64
	concentration := func(int) float64 { return b.A }
	if b.Prior != nil {
		if len(b.Prior) != len(values) {
			return nil, fmt.Errorf("Bayes.Estimate(prior len=%d, outcomes=%d): %w", len(b.Prior), len(values), ErrDimensionMismatch)
		}
		for _, a := range b.Prior {
			if a < 0 {
				return nil, fmt.Errorf("Bayes.Estimate(a=%g): %w", a, ErrBadPrior)
			}
			total += a
		}
		concentration = func(i int) float64 { return b.Prior[i] }
	} else {
		if b.A < 0 {
			return nil, fmt.Errorf("Bayes.Estimate(A=%g): %w", b.A, ErrBadPrior)
		}
		total = b.A * float64(len(values))
	}

	denom := float64(n) + total
	p := make([]float64, len(values))
	for i, v := range values {
		p[i] = (v + concentration(i)) / denom
	}

	return p, nil
}
