package encode

import (
	"fmt"
	"math"
)

// PairDistance encodes a pair of equal-length vectors by the metric
// distance between them, discretized into n equal bins of
// [minDist, maxDist]. The top of the range is stretched by one ULP so a
// pair at exactly the maximal distance lands in the last bin; distances
// outside the declared range encode to OutOfBounds.
type PairDistance struct {
	n      int
	metric Metric
	bins   *RectBinning
}

// NewPairDistance builds the encoder over the declared distance range.
// Errors: ErrBadBinCount (n ≤ 0), ErrBadRange (minDist < 0 or
// minDist ≥ maxDist — distances are nonnegative by definition).
func NewPairDistance(n int, metric Metric, minDist, maxDist float64) (*PairDistance, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewPairDistance(n=%d): %w", n, ErrBadBinCount)
	}
	if minDist < 0 || minDist >= maxDist {
		return nil, fmt.Errorf("NewPairDistance(min=%g, max=%g): %w", minDist, maxDist, ErrBadRange)
	}
	bins, err := NewFixedRectBinning([]float64{minDist}, []float64{math.Nextafter(maxDist, math.Inf(1))}, n)
	if err != nil {
		return nil, err
	}

	return &PairDistance{n: n, metric: metric, bins: bins}, nil
}

// TotalOutcomes returns n.
func (e *PairDistance) TotalOutcomes() int { return e.n }

// Distance computes the configured metric between a and b.
// Errors: ErrPointDimension on length mismatch or empty vectors.
func (e *PairDistance) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, fmt.Errorf("PairDistance.Distance(len %d vs %d): %w", len(a), len(b), ErrPointDimension)
	}
	var d float64
	switch e.metric {
	case MetricManhattan:
		for i := range a {
			d += math.Abs(a[i] - b[i])
		}
	case MetricChebyshev:
		for i := range a {
			d = math.Max(d, math.Abs(a[i]-b[i]))
		}
	default: // MetricEuclidean
		for i := range a {
			diff := a[i] - b[i]
			d += diff * diff
		}
		d = math.Sqrt(d)
	}

	return d, nil
}

// Encode bins the distance between a and b. A distance outside the
// declared range yields OutOfBounds, not an error.
func (e *PairDistance) Encode(a, b []float64) (int, error) {
	d, err := e.Distance(a, b)
	if err != nil {
		return 0, err
	}

	return e.bins.Encode([]float64{d})
}

// Decode returns the lower distance edge of a symbol's bin.
// Errors: ErrBadSymbol.
func (e *PairDistance) Decode(sym int) (float64, error) {
	point, err := e.bins.Decode(sym)
	if err != nil {
		return 0, err
	}

	return point[0], nil
}
