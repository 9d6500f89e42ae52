package transferop_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/probspace/encode"
	"github.com/katalvlaran/probspace/prob"
	"github.com/katalvlaran/probspace/transferop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededOptions builds deterministic options for tests.
func seededOptions(seed int64) transferop.Options {
	opts := transferop.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(seed))

	return opts
}

// twoStateTrajectory visits two cells of a 1-D binning with both self-loops
// and crossings, so the resulting chain is aperiodic. With the circular
// wrap its operator is [[1/3,2/3],[2/3,1/3]], whose stationary distribution
// is uniform.
func twoStateTrajectory() ([][]float64, *encode.RectBinning) {
	points := [][]float64{{0.5}, {0.5}, {1.5}, {0.5}, {1.5}, {1.5}}
	bins, _ := encode.NewRectBinning([][]float64{{0, 1, 2}})

	return points, bins
}

// TestEstimate_RowStochastic verifies every row of the transition matrix
// sums to 1 (the boundary policy completes the last point's row).
func TestEstimate_RowStochastic(t *testing.T) {
	points, bins := twoStateTrajectory()

	im, err := transferop.Estimate(points, bins, seededOptions(7))
	require.NoError(t, err)

	trans := im.TransitionMatrix()
	r, c := trans.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, r, c)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, mat.Sum(trans.RowView(i)), 1e-12, "row %d must be stochastic", i)
	}
}

// TestEstimate_Stationarity verifies the returned ρ satisfies ρT ≈ ρ
// within the configured tolerance.
func TestEstimate_Stationarity(t *testing.T) {
	points, bins := twoStateTrajectory()
	opts := seededOptions(11)

	im, err := transferop.Estimate(points, bins, opts)
	require.NoError(t, err)
	require.True(t, im.Converged())

	rho := im.InvariantDistribution().Probs()
	trans := im.TransitionMatrix()
	n := len(rho)
	for j := 0; j < n; j++ {
		var image float64
		for i := 0; i < n; i++ {
			image += rho[i] * trans.At(i, j)
		}
		assert.InDelta(t, rho[j], image, 10*opts.Tolerance, "component %d of ρT must match ρ", j)
	}
}

// TestEstimate_KnownStationary verifies the known invariant distribution
// of the symmetric two-state fixture: uniform over both bins.
func TestEstimate_KnownStationary(t *testing.T) {
	points, bins := twoStateTrajectory()

	im, err := transferop.Estimate(points, bins, seededOptions(3))
	require.NoError(t, err)
	require.Equal(t, 2, im.NumStates())

	rho := im.InvariantDistribution()
	assert.InDelta(t, 0.5, rho.Prob(0), 1e-6)
	assert.InDelta(t, 0.5, rho.Prob(1), 1e-6)
	assert.Equal(t, [][]int{{0}, {1}}, im.Coords(), "visited bins in first-appearance order")
}

// TestEstimate_CircularBoundary verifies the deterministic wrap: the last
// point transitions to the first point's bin.
func TestEstimate_CircularBoundary(t *testing.T) {
	// Three visits: bins 0, 1, 1. The last point (bin 1) wraps to bin 0.
	points := [][]float64{{0.5}, {1.5}, {1.5}}
	bins, err := encode.NewRectBinning([][]float64{{0, 1, 2}})
	require.NoError(t, err)

	opts := seededOptions(1)
	opts.Boundary = transferop.BoundaryCircular
	im, err := transferop.Estimate(points, bins, opts)
	require.NoError(t, err)

	trans := im.TransitionMatrix()
	// Row of bin 1 (state index 1): one transition 1→1, one wrap 1→0.
	assert.InDelta(t, 0.5, trans.At(1, 0), 1e-12)
	assert.InDelta(t, 0.5, trans.At(1, 1), 1e-12)
}

// TestEstimate_RandomBoundarySeeded verifies the random boundary policy is
// reproducible under an injected seed.
func TestEstimate_RandomBoundarySeeded(t *testing.T) {
	points, bins := twoStateTrajectory()

	run := func() *mat.Dense {
		opts := seededOptions(42)
		opts.Boundary = transferop.BoundaryRandom
		im, err := transferop.Estimate(points, bins, opts)
		require.NoError(t, err)

		return im.TransitionMatrix()
	}

	assert.True(t, mat.EqualApprox(run(), run(), 0), "same seed must reproduce the same operator")
}

// TestEstimate_OutOfRangeBreaksChain verifies out-of-range points never
// become states and that a point preceding one departs per the boundary
// policy instead of into the dropped point.
func TestEstimate_OutOfRangeBreaksChain(t *testing.T) {
	// Bins: 0, out, 1, 0. The first point's successor is out of range, so
	// it wraps to bin 0, as does the last point: row 0 is all self-loop.
	points := [][]float64{{0.5}, {99}, {1.5}, {0.5}}
	bins, err := encode.NewRectBinning([][]float64{{0, 1, 2}})
	require.NoError(t, err)

	im, err := transferop.Estimate(points, bins, seededOptions(5))
	require.NoError(t, err)
	assert.Equal(t, 2, im.NumStates(), "the out-of-range point is not a state")
	assert.InDelta(t, 1.0, im.TransitionMatrix().At(0, 0), 1e-12)
}

// TestEstimate_Validation verifies option and input validation.
func TestEstimate_Validation(t *testing.T) {
	points, bins := twoStateTrajectory()

	_, err := transferop.Estimate(nil, bins, seededOptions(1))
	assert.ErrorIs(t, err, prob.ErrEmptyData)

	opts := seededOptions(1)
	opts.Tolerance = 0
	_, err = transferop.Estimate(points, bins, opts)
	assert.ErrorIs(t, err, transferop.ErrBadTolerance)

	opts = seededOptions(1)
	opts.MaxIter = 0
	_, err = transferop.Estimate(points, bins, opts)
	assert.ErrorIs(t, err, transferop.ErrBadMaxIter)

	opts = seededOptions(1)
	opts.Rand = nil
	_, err = transferop.Estimate(points, bins, opts)
	assert.ErrorIs(t, err, transferop.ErrNilRand)

	// Every point outside the binning leaves no states at all.
	far := [][]float64{{50}, {60}}
	_, err = transferop.Estimate(far, bins, seededOptions(1))
	assert.ErrorIs(t, err, transferop.ErrNoVisitedBins)
}

// TestEstimate_CapNotFatal verifies hitting the iteration cap returns a
// best-effort ρ with Converged() == false and a finite achieved tolerance.
func TestEstimate_CapNotFatal(t *testing.T) {
	points, bins := twoStateTrajectory()
	opts := seededOptions(13)
	opts.MaxIter = 1
	opts.Tolerance = 1e-300 // unreachable in one step

	im, err := transferop.Estimate(points, bins, opts)
	require.NoError(t, err, "cap without convergence must not be fatal")
	assert.False(t, im.Converged())
	assert.Equal(t, 1, im.Iterations())
	assert.False(t, math.IsNaN(im.AchievedTolerance()))

	sum := 0.0
	for _, p := range im.InvariantDistribution().Probs() {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, prob.NormTolerance, "best-effort ρ is still normalized")
}

// TestEstimateEmbedded_EndToEnd verifies the scalar convenience wrapper
// embeds, fits a binning and estimates in one call.
func TestEstimateEmbedded_EndToEnd(t *testing.T) {
	xs := []float64{0.1, 0.9, 0.2, 0.8, 0.15, 0.85, 0.25, 0.75, 0.05, 0.95}

	im, err := transferop.EstimateEmbedded(xs, 2, 1, 2, seededOptions(21))
	require.NoError(t, err)
	assert.Greater(t, im.NumStates(), 0)

	sum := 0.0
	for _, p := range im.InvariantDistribution().Probs() {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, prob.NormTolerance)
}
