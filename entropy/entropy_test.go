package entropy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/probspace/entropy"
	"github.com/katalvlaran/probspace/estimator"
	"github.com/katalvlaran/probspace/outcome"
	"github.com/katalvlaran/probspace/prob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShannon_KnownValues verifies the uniform maximum ln k and the
// zero-entropy point mass.
func TestShannon_KnownValues(t *testing.T) {
	h, err := entropy.Shannon([]float64{0.25, 0.25, 0.25, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), h, 1e-12)

	h, err = entropy.Shannon([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h, "a point mass carries no uncertainty")
}

// TestRenyi_KnownValues verifies the collision entropy of a skewed vector
// and the ln k value on the uniform, which holds for every order.
func TestRenyi_KnownValues(t *testing.T) {
	// Σp² = 3/8, so H₂ = −ln(3/8) = ln(8/3).
	h, err := entropy.Renyi([]float64{0.5, 0.25, 0.25}, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(8.0/3.0), h, 1e-12)

	h, err = entropy.Renyi([]float64{0.25, 0.25, 0.25, 0.25}, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), h, 1e-12)
}

// TestTsallis_KnownValue verifies S₂ = 1 − Σp² on a skewed vector.
func TestTsallis_KnownValue(t *testing.T) {
	h, err := entropy.Tsallis([]float64{0.5, 0.25, 0.25}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.625, h, 1e-12)
}

// TestOrderOneLimit verifies Rényi and Tsallis both reduce to Shannon at
// q = 1.
func TestOrderOneLimit(t *testing.T) {
	p := []float64{0.5, 0.3, 0.2}
	want, err := entropy.Shannon(p)
	require.NoError(t, err)

	h, err := entropy.Renyi(p, 1)
	require.NoError(t, err)
	assert.Equal(t, want, h)

	h, err = entropy.Tsallis(p, 1)
	require.NoError(t, err)
	assert.Equal(t, want, h)
}

// TestMeasures_Validation verifies the probability-vector and order
// checks across the three distribution measures.
func TestMeasures_Validation(t *testing.T) {
	_, err := entropy.Shannon(nil)
	assert.ErrorIs(t, err, prob.ErrEmptyData)

	_, err = entropy.Shannon([]float64{0.5, 0.6})
	assert.ErrorIs(t, err, prob.ErrNotNormalized)

	_, err = entropy.Shannon([]float64{1.5, -0.5})
	assert.ErrorIs(t, err, prob.ErrNegativeValue)

	_, err = entropy.Renyi([]float64{1}, 0)
	assert.ErrorIs(t, err, entropy.ErrBadOrder)

	_, err = entropy.Tsallis([]float64{1}, -2)
	assert.ErrorIs(t, err, entropy.ErrBadOrder)
}

// TestSample_RegularSeries verifies SampEn = 0 for perfectly regular
// data: every template match extends to a match at the next length.
func TestSample_RegularSeries(t *testing.T) {
	constant := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	h, err := entropy.Sample(constant, 2, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	alternating := []float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}
	h, err = entropy.Sample(alternating, 2, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h, "period-2 data is fully predictable")
}

// TestSample_NoMatchesNaN verifies the degenerate-data contract: zero
// template matches give NaN, not an error.
func TestSample_NoMatchesNaN(t *testing.T) {
	h, err := entropy.Sample([]float64{1, 2, 3, 4, 5, 6}, 2, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(h))
}

// TestApproximate_RegularAndFinite verifies ApEn of a constant series is
// zero and that self-matching keeps the result finite on irregular data
// where SampEn already degenerates.
func TestApproximate_RegularAndFinite(t *testing.T) {
	constant := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	h, err := entropy.Approximate(constant, 2, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, h, 1e-12)

	h, err = entropy.Approximate([]float64{1, 2, 3, 4, 5, 6}, 2, 0)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(h))
}

// TestTemplates_Validation verifies the shared parameter checks of the
// regularity measures.
func TestTemplates_Validation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	_, err := entropy.Sample(nil, 2, 0.1)
	assert.ErrorIs(t, err, prob.ErrEmptyData)

	_, err = entropy.Sample(xs, 0, 0.1)
	assert.ErrorIs(t, err, entropy.ErrBadEmbedding)

	_, err = entropy.Sample(xs, 2, -1)
	assert.ErrorIs(t, err, entropy.ErrBadRadius)

	_, err = entropy.Approximate([]float64{1, 2, 3}, 2, 0.1)
	assert.ErrorIs(t, err, entropy.ErrShortSeries)
}

// TestShannonOf_Pipeline verifies the bundled (estimator, space, data)
// call: a monotone series has a single ordinal pattern, hence zero
// permutation entropy, while a mixed series has more.
func TestShannonOf_Pipeline(t *testing.T) {
	sp, err := outcome.DefaultOrdinalPatterns(3)
	require.NoError(t, err)

	h, err := entropy.ShannonOf[[]int](estimator.RelativeAmount{}, sp, []float64{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	h, err = entropy.ShannonOf[[]int](estimator.RelativeAmount{}, sp, []float64{1, 3, 2, 5, 4, 7, 6, 9})
	require.NoError(t, err)
	assert.Greater(t, h, 0.0)
}
