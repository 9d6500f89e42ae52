package outcome

import (
	"fmt"

	"github.com/katalvlaran/probspace/encode"
	"github.com/katalvlaran/probspace/fasthist"
	"github.com/katalvlaran/probspace/prob"
)

// ValueBinning histograms data over the cells of a rectangular binning.
// Outcomes are the minimal corners of the occupied cells ([]float64, one
// entry per axis). Points encoding to encode.OutOfBounds are silently
// excluded, which is why the histogram's cardinality can be smaller than
// the number of input points under a fixed, pre-declared binning.
type ValueBinning struct {
	bins *encode.RectBinning
}

// NewValueBinning wraps an already-constructed binning. Use
// encode.FitRectBinning / encode.FitRectBinning1D for data-driven ranges.
func NewValueBinning(bins *encode.RectBinning) *ValueBinning {
	return &ValueBinning{bins: bins}
}

var _ Space[[]float64] = (*ValueBinning)(nil)

// Counts histograms a scalar series; the binning must be one-dimensional.
// Errors: prob.ErrEmptyData, ErrDimensionMismatch.
func (v *ValueBinning) Counts(xs []float64) (prob.Counts[[]float64], error) {
	if v.bins.Dims() != 1 {
		return prob.Counts[[]float64]{}, fmt.Errorf("ValueBinning.Counts(dims=%d): %w", v.bins.Dims(), ErrDimensionMismatch)
	}
	points := make([][]float64, len(xs))
	for i, x := range xs {
		points[i] = []float64{x}
	}

	return v.CountsOfVectors(points)
}

// CountsOfVectors histograms pre-embedded points of the binning's
// dimensionality.
// Errors: prob.ErrEmptyData, ErrDimensionMismatch.
// Complexity: O(N·D log k + N log N).
func (v *ValueBinning) CountsOfVectors(points [][]float64) (prob.Counts[[]float64], error) {
	syms, err := v.symbolize(points)
	if err != nil {
		return prob.Counts[[]float64]{}, err
	}
	counts, uniq := fasthist.Counts(syms)
	outs := make([][]float64, len(uniq))
	for i, s := range uniq {
		corner, err := v.bins.Decode(s)
		if err != nil {
			return prob.Counts[[]float64]{}, err
		}
		outs[i] = corner
	}

	return prob.NewCounts(counts, outs)
}

// symbolize encodes all points and drops out-of-range ones.
func (v *ValueBinning) symbolize(points [][]float64) ([]int, error) {
	if len(points) == 0 {
		return nil, prob.ErrEmptyData
	}
	syms := make([]int, 0, len(points))
	for i, p := range points {
		sym, err := v.bins.Encode(p)
		if err != nil {
			return nil, fmt.Errorf("ValueBinning(point=%d): %w", i, ErrDimensionMismatch)
		}
		if sym == encode.OutOfBounds {
			continue
		}
		syms = append(syms, sym)
	}
	if len(syms) == 0 {
		return nil, prob.ErrEmptyData
	}

	return syms, nil
}

// AllCounts aligns the scalar histogram with every cell of the binning,
// zeros included.
func (v *ValueBinning) AllCounts(xs []float64) (prob.Counts[[]float64], error) {
	if v.bins.Dims() != 1 {
		return prob.Counts[[]float64]{}, fmt.Errorf("ValueBinning.AllCounts(dims=%d): %w", v.bins.Dims(), ErrDimensionMismatch)
	}
	points := make([][]float64, len(xs))
	for i, x := range xs {
		points[i] = []float64{x}
	}

	return v.AllCountsOfVectors(points)
}

// AllCountsOfVectors aligns the histogram with every cell of the binning.
func (v *ValueBinning) AllCountsOfVectors(points [][]float64) (prob.Counts[[]float64], error) {
	syms, err := v.symbolize(points)
	if err != nil {
		return prob.Counts[[]float64]{}, err
	}
	counts, uniq := fasthist.Counts(syms)

	total := v.bins.TotalOutcomes()
	full := make([]int, total)
	for i, s := range uniq {
		full[s] = counts[i]
	}
	outs := make([][]float64, total)
	for s := 0; s < total; s++ {
		corner, err := v.bins.Decode(s)
		if err != nil {
			return prob.Counts[[]float64]{}, err
		}
		outs[s] = corner
	}

	return prob.NewCounts(full, outs)
}

// TotalOutcomes returns the number of cells.
func (v *ValueBinning) TotalOutcomes() (int, error) {
	return v.bins.TotalOutcomes(), nil
}

// CountBased reports true.
func (*ValueBinning) CountBased() bool { return true }
