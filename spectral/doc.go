// Package spectral provides the power-spectrum outcome space: the
// frequency-domain counterpart of the time-domain histograms in package
// outcome.
//
// 🚀 What it does:
//
//	• PowerSpectrum — real FFT of a scalar series; per-frequency power
//	  |c_k|² normalized to unit mass becomes the histogram value of the
//	  outcome "normalized frequency k/N"
//
// ✨ Where it fits:
//
// PowerSpectrum implements outcome.Space[float64], so it plugs into the
// same estimator pipeline as the time-domain spaces. Its values are
// energies, not occurrence counts: CountBased() reports false, making it
// valid input for estimator.RelativeAmount and rejected input for the
// count-only estimators (Bayes, Shrinkage).
//
// ⚙️ The frequency alphabet is data-dependent: a series of length N
// produces ⌊N/2⌋+1 frequencies, so AllCounts coincides with Counts and
// TotalOutcomes has no closed form.
package spectral
