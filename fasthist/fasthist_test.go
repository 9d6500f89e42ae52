package fasthist_test

import (
	"testing"

	"github.com/katalvlaran/probspace/fasthist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCounts_Basic verifies run-length counts over an unsorted symbol
// sequence come back in ascending symbol order.
func TestCounts_Basic(t *testing.T) {
	syms := []int{2, 0, 1, 1, 0, 1}

	counts, uniq := fasthist.Counts(syms)
	assert.Equal(t, []int{2, 3, 1}, counts)
	assert.Equal(t, []int{0, 1, 2}, uniq)
}

// TestCounts_MutatesInPlace documents the aliasing contract: the argument
// slice is left sorted after the call.
func TestCounts_MutatesInPlace(t *testing.T) {
	syms := []int{3, 1, 2}
	fasthist.Counts(syms)
	assert.Equal(t, []int{1, 2, 3}, syms, "Counts must leave its argument sorted")
}

// TestCountsCopy_PreservesInput verifies the wrapper leaves the caller's
// slice untouched while producing identical counts.
func TestCountsCopy_PreservesInput(t *testing.T) {
	syms := []int{3, 1, 2, 1}

	counts, uniq := fasthist.CountsCopy(syms)
	assert.Equal(t, []int{3, 1, 2, 1}, syms, "CountsCopy must not reorder its argument")
	assert.Equal(t, []int{2, 1, 1}, counts)
	assert.Equal(t, []int{1, 2, 3}, uniq)
}

// TestCounts_Empty verifies the kernel returns empty outputs for empty
// input rather than erroring; emptiness is policed upstream.
func TestCounts_Empty(t *testing.T) {
	counts, uniq := fasthist.Counts(nil)
	assert.Nil(t, counts)
	assert.Nil(t, uniq)
}

// TestWeightedCounts_SumsPerRun verifies weights are summed per distinct
// symbol rather than counted.
func TestWeightedCounts_SumsPerRun(t *testing.T) {
	syms := []int{1, 0, 1, 0}
	wts := []float64{0.5, 1.0, 1.5, 2.0}

	sums, uniq, err := fasthist.WeightedCounts(syms, wts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, uniq)
	assert.InDeltaSlice(t, []float64{3.0, 2.0}, sums, 1e-12)
}

// TestWeightedCounts_LengthMismatch verifies mismatched slice lengths are
// rejected with ErrLengthMismatch.
func TestWeightedCounts_LengthMismatch(t *testing.T) {
	_, _, err := fasthist.WeightedCounts([]int{1, 2}, []float64{1})
	assert.ErrorIs(t, err, fasthist.ErrLengthMismatch)
}

// TestWeightedCountsCopy_PreservesInput verifies the copying wrapper keeps
// both caller slices in their original order.
func TestWeightedCountsCopy_PreservesInput(t *testing.T) {
	syms := []int{2, 1}
	wts := []float64{0.25, 0.75}

	sums, uniq, err := fasthist.WeightedCountsCopy(syms, wts)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, syms)
	assert.Equal(t, []float64{0.25, 0.75}, wts)
	assert.Equal(t, []int{1, 2}, uniq)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, sums, 1e-12)
}
