package encode

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianCDF discretizes a scalar by mapping it through the normal CDF,
// y = Φ((x−μ)/σ), and binning y into c equal cells of [0,1) via the
// rectangular-bin primitive. This is the symbolization step of dispersion
// patterns.
//
// Φ never reaches 1 for finite x, but rounding can produce y == 1.0 for
// very large inputs; that value folds into the top bin (symbol c−1) so
// Encode always yields a valid symbol in [0, c).
type GaussianCDF struct {
	c    int
	dist distuv.Normal
	bins *RectBinning
}

// NewGaussianCDF builds the encoder for a normal law with the given mean
// and standard deviation.
// Errors: ErrBadBinCount (c ≤ 0), ErrBadScale (σ ≤ 0).
func NewGaussianCDF(c int, mu, sigma float64) (*GaussianCDF, error) {
	if c <= 0 {
		return nil, fmt.Errorf("NewGaussianCDF(c=%d): %w", c, ErrBadBinCount)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("NewGaussianCDF(sigma=%g): %w", sigma, ErrBadScale)
	}
	bins, err := NewFixedRectBinning([]float64{0}, []float64{1}, c)
	if err != nil {
		return nil, err
	}

	return &GaussianCDF{c: c, dist: distuv.Normal{Mu: mu, Sigma: sigma}, bins: bins}, nil
}

// FitGaussianCDF estimates μ and σ from the data sample, then builds the
// encoder. The sample is needed at construction time only; the fitted
// encoder is reusable across series.
// Errors: ErrBadBinCount; ErrBadScale when the sample has fewer than two
// points or is constant, leaving no spread to standardize by.
func FitGaussianCDF(c int, xs []float64) (*GaussianCDF, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("FitGaussianCDF(n=%d): %w", len(xs), ErrBadScale)
	}
	mu, sigma := stat.MeanStdDev(xs, nil)

	return NewGaussianCDF(c, mu, sigma)
}

// C returns the number of CDF bins.
func (e *GaussianCDF) C() int { return e.c }

// TotalOutcomes returns c.
func (e *GaussianCDF) TotalOutcomes() int { return e.c }

// Encode maps x to its CDF bin in [0, c). It never fails: every finite x
// has a CDF value in [0,1], and the y == 1 rounding case folds into the
// top bin.
func (e *GaussianCDF) Encode(x float64) int {
	y := e.dist.CDF(x)
	sym, _ := e.bins.Encode([]float64{y}) // dims fixed at 1, cannot mismatch
	if sym == OutOfBounds {
		return e.c - 1
	}

	return sym
}

// Decode returns a representative value for a symbol: the quantile of the
// bin's CDF midpoint, Φ⁻¹((sym+½)/c).
// Errors: ErrBadSymbol.
func (e *GaussianCDF) Decode(sym int) (float64, error) {
	if sym < 0 || sym >= e.c {
		return 0, fmt.Errorf("GaussianCDF.Decode(%d): %w", sym, ErrBadSymbol)
	}

	return e.dist.Quantile((float64(sym) + 0.5) / float64(e.c)), nil
}
