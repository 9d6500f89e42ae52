// Package prob defines the two core value types of the probspace pipeline:
// Counts (raw occurrence tallies paired with their outcomes) and
// Probabilities (a normalized probability vector paired with its outcomes).
//
// Both types are constructed once, validated at construction, and immutable
// afterwards, so a single value may be shared freely across goroutines
// working on independent data.
//
// Invariants enforced here:
//
//   - len(values) == len(outcomes) in both types
//   - all values ≥ 0
//   - Probabilities sum to 1 within NormTolerance
//   - Counts carry the encoded-space cardinality: the number of encoded
//     points that actually entered the histogram, which is less than the
//     raw series length whenever delay embedding truncates the series or
//     a fixed binning excludes out-of-range points
//
// Outcome uniqueness is a documented precondition of the constructors, not
// a runtime check: outcomes are produced by run-length scans over sorted
// symbol sequences, which cannot repeat a value.
package prob
