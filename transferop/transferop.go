package transferop

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/probspace/encode"
	"github.com/katalvlaran/probspace/outcome"
	"github.com/katalvlaran/probspace/prob"
)

// InvariantMeasure owns the estimated transfer operator: the row-stochastic
// transition matrix over visited bins, the stationary distribution derived
// from it, and the bin coordinate table. Immutable after Estimate.
type InvariantMeasure struct {
	trans     *mat.Dense
	rho       prob.Probabilities[[]int]
	coords    [][]int
	iters     int
	achieved  float64
	converged bool
}

// Estimate builds the transfer operator of a time-ordered trajectory over
// the given binning and computes its invariant distribution.
//
// Points outside the binning never become states; the transitions into
// them are dropped. An in-range point with no in-range successor (the
// globally-last one, or one preceding an out-of-range point) has its image
// set by the boundary policy.
//
// Stage 1 (Validate): options and non-empty trajectory.
// Stage 2 (Symbolize): bin every point, collect visited bins.
// Stage 3 (Tally): count transitions, normalize rows.
// Stage 4 (Iterate): power iteration to the stationary distribution.
// Errors: prob.ErrEmptyData, ErrBadTolerance, ErrBadMaxIter, ErrNilRand,
// ErrNoVisitedBins, encode.ErrPointDimension.
// Complexity: O(L·D log k) symbolization + O(iters·N²) iteration.
func Estimate(points [][]float64, bins *encode.RectBinning, opts Options) (*InvariantMeasure, error) {
	if len(points) == 0 {
		return nil, prob.ErrEmptyData
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("transferop.Estimate(tolerance=%g): %w", opts.Tolerance, ErrBadTolerance)
	}
	if opts.MaxIter <= 0 {
		return nil, fmt.Errorf("transferop.Estimate(maxIter=%d): %w", opts.MaxIter, ErrBadMaxIter)
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("transferop.Estimate: %w", ErrNilRand)
	}

	// Symbolize the trajectory.
	syms := make([]int, len(points))
	for i, p := range points {
		sym, err := bins.Encode(p)
		if err != nil {
			return nil, err
		}
		syms[i] = sym
	}

	// Visited bins, in first-appearance order, and their state indices.
	index := make(map[int]int)
	var visited []int
	for _, s := range syms {
		if s == encode.OutOfBounds {
			continue
		}
		if _, ok := index[s]; !ok {
			index[s] = len(visited)
			visited = append(visited, s)
		}
	}
	if len(visited) == 0 {
		return nil, ErrNoVisitedBins
	}
	n := len(visited)

	// Tally transitions. Every in-range point departs exactly once: to its
	// successor's bin when that is known, or per the boundary policy when
	// it is not (the globally-last point, and points whose successor left
	// the binning).
	boundaryTarget := func() int {
		if opts.Boundary == BoundaryRandom {
			return opts.Rand.Intn(n)
		}
		first := 0
		for syms[first] == encode.OutOfBounds {
			first++
		}

		return index[syms[first]]
	}
	tally := mat.NewDense(n, n, nil)
	outdeg := make([]float64, n)
	for t, s := range syms {
		if s == encode.OutOfBounds {
			continue
		}
		var j int
		if t+1 < len(syms) && syms[t+1] != encode.OutOfBounds {
			j = index[syms[t+1]]
		} else {
			j = boundaryTarget()
		}
		i := index[s]
		tally.Set(i, j, tally.At(i, j)+1)
		outdeg[i]++
	}

	// Row-normalize into a stochastic matrix. Every visited bin departs at
	// least once, so no row is empty.
	trans := mat.NewDense(n, n, nil)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			trans.Set(r, c, tally.At(r, c)/outdeg[r])
		}
	}

	// Power iteration: ρ ← ρT from a random normalized start.
	rho := make([]float64, n)
	for k := range rho {
		rho[k] = opts.Rand.Float64()
	}
	floats.Scale(1/floats.Sum(rho), rho)

	next := make([]float64, n)
	achieved := floats.Norm(rho, 2) // pessimistic until the first step
	iters := 0
	converged := false
	rhoVec := mat.NewVecDense(n, rho)
	nextVec := mat.NewVecDense(n, next)
	for ; iters < opts.MaxIter; iters++ {
		// Left multiplication ρT expressed as Tᵀρ.
		nextVec.MulVec(trans.T(), rhoVec)
		floats.Scale(1/floats.Sum(next), next) // counter floating-point drift

		achieved = floats.Distance(next, rho, 2) / floats.Norm(rho, 2)
		copy(rho, next)
		if achieved < opts.Tolerance {
			iters++
			converged = true

			break
		}
	}

	// Exact renormalization before constructing the distribution.
	floats.Scale(1/floats.Sum(rho), rho)
	coords := make([][]int, n)
	for k, s := range visited {
		c, err := bins.Coord(s)
		if err != nil {
			return nil, err
		}
		coords[k] = c
	}
	distribution, err := prob.NewProbabilities(rho, coords)
	if err != nil {
		return nil, err
	}

	return &InvariantMeasure{
		trans:     trans,
		rho:       distribution,
		coords:    coords,
		iters:     iters,
		achieved:  achieved,
		converged: converged,
	}, nil
}

// EstimateEmbedded is the scalar-series convenience: delay-embed xs with
// dimension m and lag τ, fit an equal-width binning with bins cells per
// axis to the resulting trajectory, and run Estimate on it.
func EstimateEmbedded(xs []float64, m, tau, bins int, opts Options) (*InvariantMeasure, error) {
	vecs, err := outcome.Embed(xs, m, tau)
	if err != nil {
		return nil, err
	}
	binning, err := encode.FitRectBinning(vecs, bins)
	if err != nil {
		return nil, err
	}

	return Estimate(vecs, binning, opts)
}

// TransitionMatrix returns a copy of the row-stochastic transition matrix;
// row and column order matches Coords.
func (im *InvariantMeasure) TransitionMatrix() *mat.Dense {
	return mat.DenseCopyOf(im.trans)
}

// InvariantDistribution returns the stationary distribution ρ over the
// visited bins. Outcomes are per-axis bin coordinates, parallel to the
// matrix rows.
func (im *InvariantMeasure) InvariantDistribution() prob.Probabilities[[]int] {
	return im.rho
}

// Coords returns the visited bins' per-axis coordinates in matrix row
// order.
func (im *InvariantMeasure) Coords() [][]int {
	out := make([][]int, len(im.coords))
	for i, c := range im.coords {
		cc := make([]int, len(c))
		copy(cc, c)
		out[i] = cc
	}

	return out
}

// NumStates returns the number of visited bins.
func (im *InvariantMeasure) NumStates() int { return len(im.coords) }

// Iterations returns how many power-iteration steps ran.
func (im *InvariantMeasure) Iterations() int { return im.iters }

// AchievedTolerance returns the relative change of the final step, letting
// callers detect marginal convergence when the cap was hit.
func (im *InvariantMeasure) AchievedTolerance() float64 { return im.achieved }

// Converged reports whether the tolerance was reached before the cap.
func (im *InvariantMeasure) Converged() bool { return im.converged }
