package prob

import (
	"fmt"
	"math"
	"strings"
)

// Probabilities is an immutable probability distribution over a finite set
// of outcomes: a vector p with p[i] ≥ 0 and Σp ≈ 1 (within NormTolerance),
// paired index-by-index with the outcome each entry is the probability of.
//
// The outcome type parameter O is whatever the producing outcome space
// deals in: float64 for raw values, []int for ordinal or dispersion
// patterns, bin coordinates for binned spaces.
type Probabilities[O any] struct {
	p    []float64
	outs []O
}

// NewProbabilities validates and wraps a probability vector with its
// outcomes. Both slices are copied, so the caller keeps ownership of its
// arguments.
// Stage 1 (Validate): equal lengths, non-negativity, normalization.
// Stage 2 (Finalize): copy into an immutable value.
// Complexity: O(k) for k outcomes.
func NewProbabilities[O any](p []float64, outcomes []O) (Probabilities[O], error) {
	if len(p) != len(outcomes) {
		return Probabilities[O]{}, fmt.Errorf("NewProbabilities(len %d vs %d): %w", len(p), len(outcomes), ErrLengthMismatch)
	}
	var sum float64
	for _, v := range p {
		if v < 0 {
			return Probabilities[O]{}, fmt.Errorf("NewProbabilities(%g): %w", v, ErrNegativeValue)
		}
		sum += v
	}
	if math.Abs(sum-1) > NormTolerance {
		return Probabilities[O]{}, fmt.Errorf("NewProbabilities(sum=%.12g): %w", sum, ErrNotNormalized)
	}

	pc := make([]float64, len(p))
	copy(pc, p)
	oc := make([]O, len(outcomes))
	copy(oc, outcomes)

	return Probabilities[O]{p: pc, outs: oc}, nil
}

// Len returns the number of outcomes in the support.
func (pr Probabilities[O]) Len() int { return len(pr.p) }

// Prob returns the probability of the i-th outcome.
// Panics on out-of-range i, like a slice index.
func (pr Probabilities[O]) Prob(i int) float64 { return pr.p[i] }

// Outcome returns the i-th outcome.
func (pr Probabilities[O]) Outcome(i int) O { return pr.outs[i] }

// Probs returns a copy of the probability vector. The copy keeps the
// receiver immutable; callers may freely modify the result.
// Complexity: O(k).
func (pr Probabilities[O]) Probs() []float64 {
	out := make([]float64, len(pr.p))
	copy(out, pr.p)

	return out
}

// Outcomes returns a copy of the outcome sequence, parallel to Probs.
// Complexity: O(k).
func (pr Probabilities[O]) Outcomes() []O {
	out := make([]O, len(pr.outs))
	copy(out, pr.outs)

	return out
}

// String implements fmt.Stringer for debugging.
func (pr Probabilities[O]) String() string {
	var b strings.Builder
	b.WriteString("Probabilities{")
	for i, v := range pr.p {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %.6g", pr.outs[i], v)
	}
	b.WriteString("}")

	return b.String()
}
