package encode

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// RectBinning partitions D-dimensional space into rectangular cells and
// encodes a point as the row-major linear index of the cell containing it.
//
// Bins are half-open [a, b): a point equal to an interior edge falls into
// the bin to its right, and a point equal to the final edge of an axis is
// outside the partition (each axis with k edges yields k−1 bins). Points
// outside the partition on any axis encode to the OutOfBounds sentinel;
// this is a defined outcome, not an error, because fixed pre-declared
// binnings are explicitly allowed to receive future out-of-range data.
type RectBinning struct {
	edges [][]float64
	comp  *Product // row-major linearization of per-axis bin indices
}

// NewRectBinning builds a binning from explicit per-axis breakpoints.
// Each axis needs at least two strictly increasing edges.
// Errors: ErrBadEdges.
func NewRectBinning(edges [][]float64) (*RectBinning, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("NewRectBinning: no axes: %w", ErrBadEdges)
	}
	sizes := make([]int, len(edges))
	ec := make([][]float64, len(edges))
	for d, ax := range edges {
		if len(ax) < 2 {
			return nil, fmt.Errorf("NewRectBinning(axis=%d, edges=%d): %w", d, len(ax), ErrBadEdges)
		}
		for i := 1; i < len(ax); i++ {
			if ax[i] <= ax[i-1] {
				return nil, fmt.Errorf("NewRectBinning(axis=%d, edge[%d]=%g ≤ edge[%d]=%g): %w", d, i, ax[i], i-1, ax[i-1], ErrBadEdges)
			}
		}
		sizes[d] = len(ax) - 1
		ec[d] = make([]float64, len(ax))
		copy(ec[d], ax)
	}
	comp, err := NewProduct(sizes)
	if err != nil {
		return nil, err
	}

	return &RectBinning{edges: ec, comp: comp}, nil
}

// NewFixedRectBinning builds an equal-width binning with bins cells per
// axis over the half-open box [mins, maxs).
// Errors: ErrBadBinCount (bins ≤ 0), ErrPointDimension (mins/maxs length
// mismatch), ErrBadRange (minᵈ ≥ maxᵈ on some axis).
func NewFixedRectBinning(mins, maxs []float64, bins int) (*RectBinning, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("NewFixedRectBinning(bins=%d): %w", bins, ErrBadBinCount)
	}
	if len(mins) != len(maxs) || len(mins) == 0 {
		return nil, fmt.Errorf("NewFixedRectBinning(len %d vs %d): %w", len(mins), len(maxs), ErrPointDimension)
	}
	edges := make([][]float64, len(mins))
	for d := range mins {
		if mins[d] >= maxs[d] {
			return nil, fmt.Errorf("NewFixedRectBinning(axis=%d, min=%g, max=%g): %w", d, mins[d], maxs[d], ErrBadRange)
		}
		ax := make([]float64, bins+1)
		width := (maxs[d] - mins[d]) / float64(bins)
		for i := 0; i <= bins; i++ {
			ax[i] = mins[d] + float64(i)*width
		}
		ax[bins] = maxs[d] // avoid accumulated rounding at the top edge

		edges[d] = ax
	}

	return NewRectBinning(edges)
}

// FitRectBinning builds an equal-width binning whose per-axis ranges are
// taken from the data itself. The top edge of each axis is stretched by
// one ULP past the sample maximum so the maximum itself lands in the last
// bin; a fixed, user-declared binning keeps the strict half-open law
// instead.
// Errors: ErrBadBinCount, ErrPointDimension (ragged or empty input),
// ErrBadRange (a constant axis has no extent to bin).
func FitRectBinning(points [][]float64, bins int) (*RectBinning, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("FitRectBinning(bins=%d): %w", bins, ErrBadBinCount)
	}
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, fmt.Errorf("FitRectBinning: empty point set: %w", ErrPointDimension)
	}
	dims := len(points[0])
	axis := make([]float64, len(points))
	mins := make([]float64, dims)
	maxs := make([]float64, dims)
	for d := 0; d < dims; d++ {
		for i, p := range points {
			if len(p) != dims {
				return nil, fmt.Errorf("FitRectBinning(point=%d, len=%d, dims=%d): %w", i, len(p), dims, ErrPointDimension)
			}
			axis[i] = p[d]
		}
		lo, err := stats.Min(axis)
		if err != nil {
			return nil, fmt.Errorf("FitRectBinning(axis=%d): %w", d, err)
		}
		hi, err := stats.Max(axis)
		if err != nil {
			return nil, fmt.Errorf("FitRectBinning(axis=%d): %w", d, err)
		}
		if lo == hi {
			return nil, fmt.Errorf("FitRectBinning(axis=%d, constant=%g): %w", d, lo, ErrBadRange)
		}
		mins[d] = lo
		maxs[d] = math.Nextafter(hi, math.Inf(1))
	}

	return NewFixedRectBinning(mins, maxs, bins)
}

// FitRectBinning1D is the scalar convenience around FitRectBinning.
func FitRectBinning1D(xs []float64, bins int) (*RectBinning, error) {
	points := make([][]float64, len(xs))
	for i, x := range xs {
		points[i] = []float64{x}
	}

	return FitRectBinning(points, bins)
}

// Dims returns the number of axes.
func (b *RectBinning) Dims() int { return len(b.edges) }

// TotalOutcomes returns the number of cells, Πᵈ(len(edgesᵈ)−1).
func (b *RectBinning) TotalOutcomes() int { return b.comp.TotalOutcomes() }

// Encode maps a point to the linear index of its cell, or OutOfBounds when
// the point leaves the partition on any axis.
// Errors: ErrPointDimension only; out-of-range data is not an error.
// Complexity: O(D log k) via per-axis binary search over the edges.
func (b *RectBinning) Encode(point []float64) (int, error) {
	if len(point) != len(b.edges) {
		return 0, fmt.Errorf("RectBinning.Encode(len=%d, dims=%d): %w", len(point), len(b.edges), ErrPointDimension)
	}
	coords := make([]int, len(point))
	for d, x := range point {
		ax := b.edges[d]
		if x < ax[0] || x >= ax[len(ax)-1] {
			return OutOfBounds, nil
		}
		// First edge strictly greater than x; the cell is one to its left.
		// An interior edge therefore sends its own value rightwards.
		coords[d] = sort.Search(len(ax), func(i int) bool { return ax[i] > x }) - 1
	}

	return b.comp.Encode(coords)
}

// Coord recovers the per-axis bin indices of a linear symbol.
// Errors: ErrBadSymbol.
func (b *RectBinning) Coord(sym int) ([]int, error) {
	coords, err := b.comp.Decode(sym)
	if err != nil {
		return nil, fmt.Errorf("RectBinning.Coord(%d): %w", sym, ErrBadSymbol)
	}

	return coords, nil
}

// Decode returns a representative point of the cell: its minimal corner
// (the left edge on every axis).
// Errors: ErrBadSymbol.
func (b *RectBinning) Decode(sym int) ([]float64, error) {
	coords, err := b.Coord(sym)
	if err != nil {
		return nil, err
	}
	point := make([]float64, len(coords))
	for d, c := range coords {
		point[d] = b.edges[d][c]
	}

	return point, nil
}
