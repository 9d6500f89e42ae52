// Package outcome defines outcome spaces: for a given encoding and
// embedding configuration, the set of symbols a data series can produce,
// and the machinery that converts a series into (count, outcome) pairs.
//
// 🚀 Spaces provided here:
//
//	• UniqueElements          — one outcome per distinct value (data-
//	  dependent alphabet)
//	• OrdinalPatterns         — delay-embedded argsort permutations,
//	  alphabet of size m!
//	• WeightedOrdinalPatterns — ordinal patterns weighted per delay vector
//	  by variance or amplitude (pseudo-counts, not count-based)
//	• Dispersion              — Gaussian-CDF symbols embedded into
//	  dispersion patterns, alphabet of size c^m
//	• ValueBinning            — rectangular-bin histogram over scalars or
//	  vectors
//
// All spaces implement one contract:
//
//	type Space[O any] interface {
//	    Counts(xs []float64) (prob.Counts[O], error)    // observed only
//	    AllCounts(xs []float64) (prob.Counts[O], error) // full alphabet
//	    TotalOutcomes() (int, error)                    // closed form
//	    CountBased() bool
//	}
//
// Counts covers only outcomes observed in the sample; AllCounts aligns the
// histogram with the space's full enumerated alphabet, zeros included,
// which is what lets an estimator assign explicit probability to
// unobserved outcomes. For spaces whose alphabet is data-dependent
// (UniqueElements) the two coincide and TotalOutcomes returns
// ErrUnknownAlphabet.
//
// The CountBased capability flag is carried by every space and checked
// explicitly by estimators that need true integer counts; no estimator
// inspects concrete space types.
//
// A space is an immutable configuration, constructed once and applied to
// any number of series that share its shape assumptions. Construction may
// need a data sample only when the space itself is data-dependent (fitted
// bin edges, fitted Gaussian μ/σ) — never at call time.
package outcome
