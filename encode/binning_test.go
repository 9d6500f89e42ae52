package encode_test

import (
	"testing"

	"github.com/katalvlaran/probspace/encode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRectBinning_BadEdges verifies unsorted or short edge slices fail at
// construction, before any data is touched.
func TestRectBinning_BadEdges(t *testing.T) {
	_, err := encode.NewRectBinning([][]float64{{0, 1, 1}})
	assert.ErrorIs(t, err, encode.ErrBadEdges, "repeated edge must fail")

	_, err = encode.NewRectBinning([][]float64{{2, 1}})
	assert.ErrorIs(t, err, encode.ErrBadEdges, "decreasing edges must fail")

	_, err = encode.NewRectBinning([][]float64{{1}})
	assert.ErrorIs(t, err, encode.ErrBadEdges, "single edge must fail")
}

// TestRectBinning_BadRange verifies min ≥ max fails at construction.
func TestRectBinning_BadRange(t *testing.T) {
	_, err := encode.NewFixedRectBinning([]float64{1}, []float64{1}, 4)
	assert.ErrorIs(t, err, encode.ErrBadRange)
}

// TestRectBinning_HalfOpenLaw pins the [a,b) convention: a point exactly on
// an interior edge falls into the bin to its right, and a point equal to
// the final edge is outside the partition entirely.
func TestRectBinning_HalfOpenLaw(t *testing.T) {
	b, err := encode.NewRectBinning([][]float64{{0, 1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, 3, b.TotalOutcomes(), "k edges yield k-1 bins")

	sym, err := b.Encode([]float64{1.0})
	require.NoError(t, err)
	assert.Equal(t, 1, sym, "interior edge belongs to the right bin")

	sym, err = b.Encode([]float64{3.0})
	require.NoError(t, err)
	assert.Equal(t, encode.OutOfBounds, sym, "final edge is excluded from the histogram")

	sym, err = b.Encode([]float64{-0.5})
	require.NoError(t, err)
	assert.Equal(t, encode.OutOfBounds, sym, "below-range point maps to the sentinel")
}

// TestRectBinning_RowMajor verifies multi-dimensional linearization is
// row-major with the last axis varying fastest, and Coord/Decode invert it.
func TestRectBinning_RowMajor(t *testing.T) {
	b, err := encode.NewFixedRectBinning([]float64{0, 0}, []float64{2, 3}, 2)
	require.NoError(t, err)
	// Axis 0 has bins [0,1),[1,2); axis 1 has bins [0,1.5),[1.5,3).
	require.Equal(t, 4, b.TotalOutcomes())

	sym, err := b.Encode([]float64{1.2, 0.4}) // coords (1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, sym, "row-major: sym = 1*2 + 0")

	coords, err := b.Coord(sym)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, coords)

	corner, err := b.Decode(sym)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, corner, "representative is the minimal corner")
}

// TestRectBinning_DimensionMismatch verifies a wrong-dimensional point is a
// call-time error, unlike out-of-range data.
func TestRectBinning_DimensionMismatch(t *testing.T) {
	b, err := encode.NewFixedRectBinning([]float64{0}, []float64{1}, 2)
	require.NoError(t, err)

	_, err = b.Encode([]float64{0.5, 0.5})
	assert.ErrorIs(t, err, encode.ErrPointDimension)
}

// TestFitRectBinning_IncludesMaximum verifies a data-driven fit stretches
// the top edge so the sample maximum itself is binned, unlike fixed ranges.
func TestFitRectBinning_IncludesMaximum(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	b, err := encode.FitRectBinning1D(xs, 3)
	require.NoError(t, err)

	sym, err := b.Encode([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, 2, sym, "sample maximum must land in the last bin")
}

// TestFitRectBinning_ConstantAxis verifies a constant axis cannot be fit.
func TestFitRectBinning_ConstantAxis(t *testing.T) {
	_, err := encode.FitRectBinning1D([]float64{2, 2, 2}, 4)
	assert.ErrorIs(t, err, encode.ErrBadRange)
}

// TestProduct_MixedRadixRoundTrip verifies Encode/Decode invert each other
// over the full Cartesian product.
func TestProduct_MixedRadixRoundTrip(t *testing.T) {
	p, err := encode.NewProduct([]int{2, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 12, p.TotalOutcomes())

	seen := make([]bool, 12)
	for a := 0; a < 2; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 2; c++ {
				sym, err := p.Encode([]int{a, b, c})
				require.NoError(t, err)
				require.False(t, seen[sym], "linear index %d hit twice", sym)
				seen[sym] = true

				back, err := p.Decode(sym)
				require.NoError(t, err)
				assert.Equal(t, []int{a, b, c}, back)
			}
		}
	}
}

// TestProduct_Errors verifies range and dimension violations.
func TestProduct_Errors(t *testing.T) {
	_, err := encode.NewProduct([]int{2, 0})
	assert.ErrorIs(t, err, encode.ErrBadBinCount)

	p, err := encode.NewProduct([]int{2, 2})
	require.NoError(t, err)

	_, err = p.Encode([]int{1})
	assert.ErrorIs(t, err, encode.ErrPointDimension)
	_, err = p.Encode([]int{1, 2})
	assert.ErrorIs(t, err, encode.ErrBadSymbol)
	_, err = p.Decode(4)
	assert.ErrorIs(t, err, encode.ErrBadSymbol)
}
