package entropy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/probspace/prob"
)

// chebyshev returns the maximum componentwise distance between the
// length-m templates starting at i and j.
func chebyshev(xs []float64, i, j, m int) float64 {
	d := 0.0
	for k := 0; k < m; k++ {
		if diff := math.Abs(xs[i+k] - xs[j+k]); diff > d {
			d = diff
		}
	}

	return d
}

// Sample computes the sample entropy SampEn(m, r): −ln(A/B), where B
// counts template pairs of length m within Chebyshev distance r and A
// counts the same pairs at length m+1. Self-pairs are excluded. Both
// template sets range over the N−m starting positions, which keeps the
// two counts comparable.
//
// A series with no matches at either length yields NaN, not an error:
// undefined regularity is an expected outcome for short or highly
// irregular data.
//
// Stage 1 (Validate): m ≥ 1, r ≥ 0, at least m+2 samples.
// Stage 2 (Count): pairwise template comparison at both lengths.
// Errors: prob.ErrEmptyData, ErrBadEmbedding, ErrBadRadius, ErrShortSeries.
// Complexity: O((N−m)²·m) time, O(1) extra memory.
func Sample(xs []float64, m int, r float64) (float64, error) {
	if err := checkTemplates(xs, m, r); err != nil {
		return 0, fmt.Errorf("Sample(m=%d, r=%v): %w", m, r, err)
	}
	n := len(xs) - m // template count at both lengths
	var a, b int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if chebyshev(xs, i, j, m) <= r {
				b++
				if math.Abs(xs[i+m]-xs[j+m]) <= r {
					a++
				}
			}
		}
	}
	if a == 0 || b == 0 {
		return math.NaN(), nil
	}

	return -math.Log(float64(a) / float64(b)), nil
}

// Approximate computes the approximate entropy ApEn(m, r):
// Φ(m) − Φ(m+1), where Φ(m) averages ln of the fraction of length-m
// templates within Chebyshev distance r of each template. Templates
// match themselves, so every fraction is positive and the result is
// always finite.
//
// Stage 1 (Validate): m ≥ 1, r ≥ 0, at least m+2 samples.
// Stage 2 (Count): per-template match fractions at both lengths.
// Errors: prob.ErrEmptyData, ErrBadEmbedding, ErrBadRadius, ErrShortSeries.
// Complexity: O((N−m)²·m) time, O(1) extra memory.
func Approximate(xs []float64, m int, r float64) (float64, error) {
	if err := checkTemplates(xs, m, r); err != nil {
		return 0, fmt.Errorf("Approximate(m=%d, r=%v): %w", m, r, err)
	}

	return phi(xs, m, r) - phi(xs, m+1, r), nil
}

// phi averages ln(C_i) over all length-m templates, where C_i is the
// fraction of templates (self included) within radius r of template i.
func phi(xs []float64, m int, r float64) float64 {
	n := len(xs) - m + 1
	sum := 0.0
	for i := 0; i < n; i++ {
		matches := 0
		for j := 0; j < n; j++ {
			if chebyshev(xs, i, j, m) <= r {
				matches++
			}
		}
		sum += math.Log(float64(matches) / float64(n))
	}

	return sum / float64(n)
}

// checkTemplates validates the shared regularity-measure parameters.
func checkTemplates(xs []float64, m int, r float64) error {
	if len(xs) == 0 {
		return prob.ErrEmptyData
	}
	if m < 1 {
		return ErrBadEmbedding
	}
	if r < 0 {
		return ErrBadRadius
	}
	if len(xs) < m+2 {
		return ErrShortSeries
	}

	return nil
}
