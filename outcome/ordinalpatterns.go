package outcome

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/probspace/encode"
	"github.com/katalvlaran/probspace/fasthist"
	"github.com/katalvlaran/probspace/prob"
)

// OrdinalPatterns is the permutation-pattern outcome space: a scalar
// series is delay-embedded with dimension m and lag τ, every delay vector
// is reduced to its argsort permutation, and the alphabet is the m!
// permutations. Outcomes are 0-based argsort permutations ([]int).
type OrdinalPatterns struct {
	m, tau int
	enc    *encode.OrdinalPattern
}

// NewOrdinalPatterns builds the space. rng is consumed only under
// encode.TieBreakRandom; pass encode.TieBreakStable with a nil rng for
// fully deterministic symbolization.
// Errors: encode.ErrBadDimension, encode.ErrNilRand, ErrBadLag.
func NewOrdinalPatterns(m, tau int, tie encode.TieBreak, rng *rand.Rand) (*OrdinalPatterns, error) {
	if tau < 1 {
		return nil, fmt.Errorf("NewOrdinalPatterns(tau=%d): %w", tau, ErrBadLag)
	}
	enc, err := encode.NewOrdinalPattern(m, tie, rng)
	if err != nil {
		return nil, err
	}

	return &OrdinalPatterns{m: m, tau: tau, enc: enc}, nil
}

// DefaultOrdinalPatterns is the convenience constructor: lag 1 and random
// tie-breaking with a time-seeded generator (the package's documented
// non-determinism point).
func DefaultOrdinalPatterns(m int) (*OrdinalPatterns, error) {
	enc, err := encode.DefaultOrdinalPattern(m)
	if err != nil {
		return nil, err
	}

	return &OrdinalPatterns{m: m, tau: 1, enc: enc}, nil
}

var _ Space[[]int] = (*OrdinalPatterns)(nil)

// symbolize encodes every vector, verifying dimensionality.
func (o *OrdinalPatterns) symbolize(vecs [][]float64) ([]int, error) {
	syms := make([]int, len(vecs))
	for i, v := range vecs {
		if len(v) != o.m {
			return nil, fmt.Errorf("OrdinalPatterns(vector=%d, len=%d, m=%d): %w", i, len(v), o.m, ErrDimensionMismatch)
		}
		sym, err := o.enc.Encode(v)
		if err != nil {
			return nil, err
		}
		syms[i] = sym
	}

	return syms, nil
}

// observed counts the symbol sequence and decodes the distinct symbols
// back into permutations.
func (o *OrdinalPatterns) observed(syms []int) (prob.Counts[[]int], error) {
	counts, uniq := fasthist.Counts(syms)
	outs := make([][]int, len(uniq))
	for i, s := range uniq {
		perm, err := o.enc.Decode(s)
		if err != nil {
			return prob.Counts[[]int]{}, err
		}
		outs[i] = perm
	}

	return prob.NewCounts(counts, outs)
}

// Counts embeds xs and histograms the observed permutations.
// Errors: prob.ErrEmptyData, ErrShortSeries.
// Complexity: O(N·m² + N log N).
func (o *OrdinalPatterns) Counts(xs []float64) (prob.Counts[[]int], error) {
	vecs, err := Embed(xs, o.m, o.tau)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	syms, err := o.symbolize(vecs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}

	return o.observed(syms)
}

// CountsOfVectors is the pre-embedded entry point: no embedding happens,
// and every vector must already have the declared dimension m.
// Errors: prob.ErrEmptyData, ErrDimensionMismatch.
func (o *OrdinalPatterns) CountsOfVectors(vecs [][]float64) (prob.Counts[[]int], error) {
	if len(vecs) == 0 {
		return prob.Counts[[]int]{}, prob.ErrEmptyData
	}
	syms, err := o.symbolize(vecs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}

	return o.observed(syms)
}

// AllCounts embeds xs and aligns the histogram with all m! permutations in
// Lehmer-code order, zeros included.
// Complexity: O(N·m² + m!·m) — the alphabet enumeration dominates for
// large m; keep m modest when requesting the full alphabet.
func (o *OrdinalPatterns) AllCounts(xs []float64) (prob.Counts[[]int], error) {
	vecs, err := Embed(xs, o.m, o.tau)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	syms, err := o.symbolize(vecs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	counts, uniq := fasthist.Counts(syms)

	total := o.enc.TotalOutcomes()
	full := make([]int, total)
	for i, s := range uniq {
		full[s] = counts[i]
	}
	outs := make([][]int, total)
	for s := 0; s < total; s++ {
		perm, err := o.enc.Decode(s)
		if err != nil {
			return prob.Counts[[]int]{}, err
		}
		outs[s] = perm
	}

	return prob.NewCounts(full, outs)
}

// TotalOutcomes returns m!.
func (o *OrdinalPatterns) TotalOutcomes() (int, error) {
	return o.enc.TotalOutcomes(), nil
}

// CountBased reports true.
func (*OrdinalPatterns) CountBased() bool { return true }
