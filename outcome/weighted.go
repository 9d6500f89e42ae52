package outcome

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/probspace/encode"
	"github.com/katalvlaran/probspace/fasthist"
	"github.com/katalvlaran/probspace/prob"
)

// Weighting selects how WeightedOrdinalPatterns weighs each delay vector.
type Weighting int

const (
	// WeightVariance weighs a vector by its population variance, the
	// weighted-permutation-entropy scheme: flat stretches of the series
	// contribute little, volatile ones a lot.
	WeightVariance Weighting = iota
	// WeightAmplitude weighs a vector by its mean absolute value, the
	// amplitude-aware scheme.
	WeightAmplitude
)

// WeightedOrdinalPatterns is the amplitude/variance-weighted variant of
// OrdinalPatterns: every delay vector contributes a real-valued weight
// instead of a unit count, summed per pattern by the weighted counting
// kernel. The resulting histogram is NOT a true count histogram —
// CountBased reports false, and estimators requiring integer counts
// (Bayesian, shrinkage) reject this space.
type WeightedOrdinalPatterns struct {
	m, tau    int
	weighting Weighting
	enc       *encode.OrdinalPattern
}

// NewWeightedOrdinalPatterns builds the weighted space; parameters mirror
// NewOrdinalPatterns.
func NewWeightedOrdinalPatterns(m, tau int, weighting Weighting, tie encode.TieBreak, rng *rand.Rand) (*WeightedOrdinalPatterns, error) {
	if tau < 1 {
		return nil, fmt.Errorf("NewWeightedOrdinalPatterns(tau=%d): %w", tau, ErrBadLag)
	}
	enc, err := encode.NewOrdinalPattern(m, tie, rng)
	if err != nil {
		return nil, err
	}

	return &WeightedOrdinalPatterns{m: m, tau: tau, weighting: weighting, enc: enc}, nil
}

var _ Space[[]int] = (*WeightedOrdinalPatterns)(nil)

// weight computes the configured per-vector weight.
func (w *WeightedOrdinalPatterns) weight(v []float64) float64 {
	switch w.weighting {
	case WeightAmplitude:
		var sum float64
		for _, x := range v {
			if x < 0 {
				x = -x
			}
			sum += x
		}

		return sum / float64(len(v))
	default: // WeightVariance
		mean := stat.Mean(v, nil)
		var sq float64
		for _, x := range v {
			d := x - mean
			sq += d * d
		}

		return sq / float64(len(v))
	}
}

// symbolizeWeighted encodes every vector and computes its weight.
func (w *WeightedOrdinalPatterns) symbolizeWeighted(vecs [][]float64) (syms []int, wts []float64, err error) {
	syms = make([]int, len(vecs))
	wts = make([]float64, len(vecs))
	for i, v := range vecs {
		if len(v) != w.m {
			return nil, nil, fmt.Errorf("WeightedOrdinalPatterns(vector=%d, len=%d, m=%d): %w", i, len(v), w.m, ErrDimensionMismatch)
		}
		sym, err := w.enc.Encode(v)
		if err != nil {
			return nil, nil, err
		}
		syms[i] = sym
		wts[i] = w.weight(v)
	}

	return syms, wts, nil
}

// Counts embeds xs and sums per-pattern weights over the observed
// patterns. The histogram is a pseudo-count histogram with cardinality
// equal to the number of embedded vectors.
func (w *WeightedOrdinalPatterns) Counts(xs []float64) (prob.Counts[[]int], error) {
	vecs, err := Embed(xs, w.m, w.tau)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	syms, wts, err := w.symbolizeWeighted(vecs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	sums, uniq, err := fasthist.WeightedCounts(syms, wts)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	outs := make([][]int, len(uniq))
	for i, s := range uniq {
		perm, err := w.enc.Decode(s)
		if err != nil {
			return prob.Counts[[]int]{}, err
		}
		outs[i] = perm
	}

	return prob.NewPseudoCounts(sums, outs, len(vecs))
}

// AllCounts aligns the weighted histogram with all m! patterns.
func (w *WeightedOrdinalPatterns) AllCounts(xs []float64) (prob.Counts[[]int], error) {
	vecs, err := Embed(xs, w.m, w.tau)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	syms, wts, err := w.symbolizeWeighted(vecs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	sums, uniq, err := fasthist.WeightedCounts(syms, wts)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}

	total := w.enc.TotalOutcomes()
	full := make([]float64, total)
	for i, s := range uniq {
		full[s] = sums[i]
	}
	outs := make([][]int, total)
	for s := 0; s < total; s++ {
		perm, err := w.enc.Decode(s)
		if err != nil {
			return prob.Counts[[]int]{}, err
		}
		outs[s] = perm
	}

	return prob.NewPseudoCounts(full, outs, len(vecs))
}

// TotalOutcomes returns m!.
func (w *WeightedOrdinalPatterns) TotalOutcomes() (int, error) {
	return w.enc.TotalOutcomes(), nil
}

// CountBased reports false: weight sums are not occurrence counts.
func (*WeightedOrdinalPatterns) CountBased() bool { return false }
