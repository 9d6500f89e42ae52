package prob

import "fmt"

// Counts is an immutable histogram over a finite set of outcomes, produced
// by an outcome space before any probability estimation happens.
//
// Two flavors exist, distinguished by the CountBased capability flag:
//
//   - count-based: values are nonnegative integers and sum exactly to N(),
//     the encoded-space cardinality. Every estimator accepts these.
//   - pseudo-counts: values are nonnegative reals (spectral energies,
//     amplitude weights) that are not occurrence counts. Only estimators
//     that never interpret values as sample counts (relative amount)
//     accept these; Bayesian and shrinkage regularizers reject them.
type Counts[O any] struct {
	vals       []float64
	outs       []O
	n          int
	countBased bool
}

// NewCounts validates and wraps an integer histogram. The encoded-space
// cardinality is the sum of the counts, which makes the sum(c) == N
// invariant hold by construction. Both slices are copied.
// Complexity: O(k).
func NewCounts[O any](counts []int, outcomes []O) (Counts[O], error) {
	if len(counts) != len(outcomes) {
		return Counts[O]{}, fmt.Errorf("NewCounts(len %d vs %d): %w", len(counts), len(outcomes), ErrLengthMismatch)
	}
	vals := make([]float64, len(counts))
	n := 0
	for i, c := range counts {
		if c < 0 {
			return Counts[O]{}, fmt.Errorf("NewCounts(%d): %w", c, ErrNegativeValue)
		}
		vals[i] = float64(c)
		n += c
	}
	oc := make([]O, len(outcomes))
	copy(oc, outcomes)

	return Counts[O]{vals: vals, outs: oc, n: n, countBased: true}, nil
}

// NewPseudoCounts wraps a real-valued histogram whose values are weights or
// energies rather than occurrence counts. cardinality reports how many
// encoded points contributed (it is NOT the sum of the values). The result
// has CountBased() == false.
// Complexity: O(k).
func NewPseudoCounts[O any](values []float64, outcomes []O, cardinality int) (Counts[O], error) {
	if len(values) != len(outcomes) {
		return Counts[O]{}, fmt.Errorf("NewPseudoCounts(len %d vs %d): %w", len(values), len(outcomes), ErrLengthMismatch)
	}
	vals := make([]float64, len(values))
	for i, v := range values {
		if v < 0 {
			return Counts[O]{}, fmt.Errorf("NewPseudoCounts(%g): %w", v, ErrNegativeValue)
		}
		vals[i] = v
	}
	oc := make([]O, len(outcomes))
	copy(oc, outcomes)

	return Counts[O]{vals: vals, outs: oc, n: cardinality, countBased: false}, nil
}

// Len returns the number of outcomes in the histogram.
func (c Counts[O]) Len() int { return len(c.vals) }

// Value returns the i-th count (or weight, for pseudo-counts).
func (c Counts[O]) Value(i int) float64 { return c.vals[i] }

// Values returns a copy of the value vector.
func (c Counts[O]) Values() []float64 {
	out := make([]float64, len(c.vals))
	copy(out, c.vals)

	return out
}

// Outcome returns the i-th outcome.
func (c Counts[O]) Outcome(i int) O { return c.outs[i] }

// Outcomes returns a copy of the outcome sequence, parallel to Values.
func (c Counts[O]) Outcomes() []O {
	out := make([]O, len(c.outs))
	copy(out, c.outs)

	return out
}

// N returns the encoded-space cardinality: how many encoded points entered
// the histogram. For count-based histograms this equals the sum of Values.
func (c Counts[O]) N() int { return c.n }

// CountBased reports whether Values are true occurrence counts.
func (c Counts[O]) CountBased() bool { return c.countBased }
