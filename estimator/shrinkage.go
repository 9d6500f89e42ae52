package estimator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/probspace/prob"
)

// Shrinkage is the James–Stein estimator: it shrinks the plug-in estimate
// toward a target distribution, p_k = λ·t_k + (1−λ)·p̂_k.
//
// The target defaults to uniform 1/m over the outcome set. The intensity
// λ is either fixed by the caller or, when left at its NaN default,
// estimated analytically (Hausser–Strimmer):
//
//	λ* = clamp( (1 − Σ_k p̂_k²) / ((n−1) · Σ_k (t_k − p̂_k)²), 0, 1 )
//
// A zero denominator — the plug-in estimate already equals the target, or
// n = 1 — clamps to λ = 1, which is a no-op in the first case and full
// shrinkage to the target in the second.
type Shrinkage struct {
	// Target is the shrinkage target distribution; nil means uniform.
	// A non-nil Target must match the outcome-set length and sum to 1.
	Target []float64
	// Lambda is the shrinkage intensity in [0, 1]; NaN selects the
	// analytic estimate.
	Lambda float64
}

// DefaultShrinkage returns the uniform-target estimator with analytically
// estimated intensity.
func DefaultShrinkage() Shrinkage { return Shrinkage{Lambda: math.NaN()} }

var _ Estimator = Shrinkage{}

// Estimate implements Estimator.
// Errors: ErrNotCountBased, ErrDimensionMismatch, ErrBadTarget,
// ErrBadLambda, prob.ErrEmptyData.
// Complexity: O(k).
func (s Shrinkage) Estimate(values []float64, n int, countBased bool) ([]float64, error) {
	if !countBased {
		return nil, fmt.Errorf("Shrinkage.Estimate: %w", ErrNotCountBased)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Shrinkage.Estimate(n=%d): %w", n, prob.ErrEmptyData)
	}

	// Resolve and validate the target.
	k := len(values)
	target := s.Target
	if target == nil {
		target = make([]float64, k)
		for i := range target {
			target[i] = 1 / float64(k)
		}
	} else {
		if len(target) != k {
			return nil, fmt.Errorf("Shrinkage.Estimate(target len=%d, outcomes=%d): %w", len(target), k, ErrDimensionMismatch)
		}
		var sum float64
		for _, t := range target {
			if t < 0 {
				return nil, fmt.Errorf("Shrinkage.Estimate(t=%g): %w", t, ErrBadTarget)
			}
			sum += t
		}
		if math.Abs(sum-1) > prob.NormTolerance {
			return nil, fmt.Errorf("Shrinkage.Estimate(target sum=%.12g): %w", sum, ErrBadTarget)
		}
	}

	// Plug-in estimate to shrink from.
	mle := make([]float64, k)
	for i, v := range values {
		mle[i] = v / float64(n)
	}

	// Resolve the intensity.
	lambda := s.Lambda
	if math.IsNaN(lambda) {
		var sqSum, distSq float64
		for i := range mle {
			sqSum += mle[i] * mle[i]
			d := target[i] - mle[i]
			distSq += d * d
		}
		denom := float64(n-1) * distSq
		if denom <= 0 {
			lambda = 1
		} else {
			lambda = (1 - sqSum) / denom
			lambda = math.Max(0, math.Min(1, lambda))
		}
	} else if lambda < 0 || lambda > 1 {
		return nil, fmt.Errorf("Shrinkage.Estimate(lambda=%g): %w", lambda, ErrBadLambda)
	}

	p := make([]float64, k)
	for i := range p {
		p[i] = lambda*target[i] + (1-lambda)*mle[i]
	}

	return p, nil
}
