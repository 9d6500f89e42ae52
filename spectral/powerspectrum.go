package spectral

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/probspace/outcome"
	"github.com/katalvlaran/probspace/prob"
)

// ErrZeroPower indicates an all-zero series: its spectrum carries no
// energy, so no distribution over frequencies exists.
var ErrZeroPower = errors.New("spectral: series has zero total power")

// PowerSpectrum is the frequency-domain outcome space. Each outcome is a
// normalized frequency in [0, 0.5] (cycles per sample) and its histogram
// value is the spectral power at that frequency, scaled to unit total
// mass. The values are energies, so the space is not count-based.
type PowerSpectrum struct{}

// NewPowerSpectrum returns the (stateless) power-spectrum space.
func NewPowerSpectrum() PowerSpectrum { return PowerSpectrum{} }

var _ outcome.Space[float64] = PowerSpectrum{}

// Counts computes the real FFT of xs and returns per-frequency power
// |c_k|², normalized to sum 1, as pseudo-counts over the normalized
// frequencies k/N for k = 0 … ⌊N/2⌋. The reported cardinality is the
// number of frequencies.
//
// Stage 1 (Validate): non-empty series with nonzero energy.
// Stage 2 (Transform): FFT, square magnitudes, normalize.
// Errors: prob.ErrEmptyData, ErrZeroPower.
// Complexity: O(N log N) time, O(N) memory.
func (PowerSpectrum) Counts(xs []float64) (prob.Counts[float64], error) {
	if len(xs) == 0 {
		return prob.Counts[float64]{}, fmt.Errorf("PowerSpectrum.Counts(): %w", prob.ErrEmptyData)
	}
	ft := fourier.NewFFT(len(xs))
	coeff := ft.Coefficients(nil, xs)

	power := make([]float64, len(coeff))
	freqs := make([]float64, len(coeff))
	for k, c := range coeff {
		a := cmplx.Abs(c)
		power[k] = a * a
		freqs[k] = ft.Freq(k)
	}
	total := floats.Sum(power)
	if total == 0 {
		return prob.Counts[float64]{}, fmt.Errorf("PowerSpectrum.Counts(len %d): %w", len(xs), ErrZeroPower)
	}
	floats.Scale(1/total, power)

	return prob.NewPseudoCounts(power, freqs, len(coeff))
}

// AllCounts equals Counts: the frequency grid is fixed by the series
// length, so every frequency already appears in the observed histogram.
func (p PowerSpectrum) AllCounts(xs []float64) (prob.Counts[float64], error) {
	return p.Counts(xs)
}

// TotalOutcomes always returns ErrUnknownAlphabet: the number of
// frequencies is ⌊N/2⌋+1, known only once the series length is.
func (PowerSpectrum) TotalOutcomes() (int, error) {
	return 0, outcome.ErrUnknownAlphabet
}

// CountBased reports false: spectral power is energy, not occurrences.
func (PowerSpectrum) CountBased() bool { return false }
