// Package encode maps individual data points or state vectors to integer
// symbols, and back where the map is invertible.
//
// 🚀 What lives here?
//
//	• OrdinalPattern — argsort permutation of an m-vector → Lehmer code
//	  in [0, m!) with a configurable tie-breaking policy
//	• RectBinning    — D-dimensional half-open rectangular bins with a
//	  reserved OutOfBounds sentinel for out-of-range points
//	• GaussianCDF    — Φ((x−μ)/σ) discretized into c equal bins of [0,1)
//	• BubbleSwaps    — adjacent-transposition count of bubble sort
//	  (not invertible: many permutations share a swap count)
//	• Product        — mixed-radix composition of k sub-symbols
//	• PairDistance   — metric distance between two vectors, binned
//
// Every encoding is an immutable value constructed by a New… function that
// validates its configuration up front, before any data is touched. After
// construction an encoding is safe for concurrent use on independent data,
// with one documented exception: an OrdinalPattern configured with
// TieBreakRandom draws from its injected rand source and must not be
// shared across goroutines.
//
// Symbols always live in [0, TotalOutcomes()); RectBinning additionally
// reserves the sentinel OutOfBounds (−1) for points outside all bins,
// which is a defined outcome of Encode and never an error.
package encode
