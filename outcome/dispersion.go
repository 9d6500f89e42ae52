package outcome

import (
	"fmt"

	"github.com/katalvlaran/probspace/encode"
	"github.com/katalvlaran/probspace/fasthist"
	"github.com/katalvlaran/probspace/prob"
)

// Dispersion is the dispersion-pattern outcome space: every value of the
// series is first discretized into one of c classes by the Gaussian-CDF
// encoding, the resulting symbol series is delay-embedded with dimension m
// and lag τ, and each length-m symbol tuple is one dispersion pattern.
// The alphabet has c^m patterns; outcomes are the patterns themselves
// ([]int tuples with entries in [0, c)).
//
// The symbolization follows the documented Gaussian-discretization
// procedure exactly. Note that the worked example in Zhou et al.'s
// missing-dispersion-patterns paper lists a symbol sequence that this
// procedure does not reproduce; the discrepancy is a known literature
// ambiguity, deliberately left unreconciled here.
type Dispersion struct {
	m, tau int
	gauss  *encode.GaussianCDF
	comp   *encode.Product
}

// NewDispersion builds the space from an already-configured Gaussian-CDF
// encoder (the number of classes c is taken from it).
// Errors: encode.ErrBadDimension (m < 2), ErrBadLag.
func NewDispersion(m, tau int, gauss *encode.GaussianCDF) (*Dispersion, error) {
	if m < 2 {
		return nil, fmt.Errorf("NewDispersion(m=%d): %w", m, encode.ErrBadDimension)
	}
	if tau < 1 {
		return nil, fmt.Errorf("NewDispersion(tau=%d): %w", tau, ErrBadLag)
	}
	sizes := make([]int, m)
	for i := range sizes {
		sizes[i] = gauss.C()
	}
	comp, err := encode.NewProduct(sizes)
	if err != nil {
		return nil, err
	}

	return &Dispersion{m: m, tau: tau, gauss: gauss, comp: comp}, nil
}

// FitDispersion estimates the Gaussian-CDF encoder's μ and σ from the
// sample, then builds the space. The sample matters at construction only.
func FitDispersion(m, tau, c int, xs []float64) (*Dispersion, error) {
	gauss, err := encode.FitGaussianCDF(c, xs)
	if err != nil {
		return nil, err
	}

	return NewDispersion(m, tau, gauss)
}

var _ Space[[]int] = (*Dispersion)(nil)

// patterns symbolizes xs and product-encodes every embedded tuple.
func (d *Dispersion) patterns(xs []float64) ([]int, error) {
	if len(xs) == 0 {
		return nil, prob.ErrEmptyData
	}
	span := (d.m - 1) * d.tau
	if len(xs) <= span {
		return nil, ErrShortSeries
	}

	classes := make([]int, len(xs))
	for i, x := range xs {
		classes[i] = d.gauss.Encode(x)
	}

	syms := make([]int, len(xs)-span)
	tuple := make([]int, d.m)
	for i := range syms {
		for k := 0; k < d.m; k++ {
			tuple[k] = classes[i+k*d.tau]
		}
		sym, err := d.comp.Encode(tuple)
		if err != nil {
			return nil, err
		}
		syms[i] = sym
	}

	return syms, nil
}

// Counts histograms the observed dispersion patterns.
// Errors: prob.ErrEmptyData, ErrShortSeries.
// Complexity: O(N·m + N log N).
func (d *Dispersion) Counts(xs []float64) (prob.Counts[[]int], error) {
	syms, err := d.patterns(xs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	counts, uniq := fasthist.Counts(syms)
	outs := make([][]int, len(uniq))
	for i, s := range uniq {
		tuple, err := d.comp.Decode(s)
		if err != nil {
			return prob.Counts[[]int]{}, err
		}
		outs[i] = tuple
	}

	return prob.NewCounts(counts, outs)
}

// AllCounts aligns the histogram with all c^m patterns in mixed-radix
// order, zeros included — the entry point for missing-pattern analyses.
func (d *Dispersion) AllCounts(xs []float64) (prob.Counts[[]int], error) {
	syms, err := d.patterns(xs)
	if err != nil {
		return prob.Counts[[]int]{}, err
	}
	counts, uniq := fasthist.Counts(syms)

	total := d.comp.TotalOutcomes()
	full := make([]int, total)
	for i, s := range uniq {
		full[s] = counts[i]
	}
	outs := make([][]int, total)
	for s := 0; s < total; s++ {
		tuple, err := d.comp.Decode(s)
		if err != nil {
			return prob.Counts[[]int]{}, err
		}
		outs[s] = tuple
	}

	return prob.NewCounts(full, outs)
}

// TotalOutcomes returns c^m.
func (d *Dispersion) TotalOutcomes() (int, error) {
	return d.comp.TotalOutcomes(), nil
}

// CountBased reports true.
func (*Dispersion) CountBased() bool { return true }
