// Package encode defines shared enums and sentinel errors for the encoding
// layer of probspace.
package encode

import "errors"

// OutOfBounds is the reserved sentinel symbol for points that fall outside
// every bin of a RectBinning. It is distinct from all valid symbols, which
// are nonnegative. Receiving out-of-range data under a fixed, pre-declared
// binning is expected, so Encode reports it through this sentinel rather
// than through an error.
const OutOfBounds = -1

// Sentinel errors for encoding construction and use.
var (
	// ErrBadDimension indicates an embedding dimension below 2.
	ErrBadDimension = errors.New("encode: dimension must be at least 2")
	// ErrBadBinCount indicates a non-positive number of bins or radices.
	ErrBadBinCount = errors.New("encode: bin count must be positive")
	// ErrBadEdges indicates bin edges that are not strictly increasing or
	// have fewer than two entries on some axis.
	ErrBadEdges = errors.New("encode: bin edges must be strictly increasing with at least two entries per axis")
	// ErrBadRange indicates a range whose minimum is not below its maximum.
	ErrBadRange = errors.New("encode: range minimum must be below range maximum")
	// ErrBadScale indicates a non-positive standard deviation.
	ErrBadScale = errors.New("encode: standard deviation must be positive")
	// ErrBadSymbol indicates a symbol outside [0, TotalOutcomes()).
	ErrBadSymbol = errors.New("encode: symbol outside the encoding's alphabet")
	// ErrNotInvertible indicates the encoding has no decode operation.
	ErrNotInvertible = errors.New("encode: encoding does not support decoding")
	// ErrPointDimension indicates an input point whose dimensionality does
	// not match the encoding's configuration.
	ErrPointDimension = errors.New("encode: point dimensionality does not match the encoding")
	// ErrNilRand indicates a randomized policy constructed without a rand
	// source. Core encoders never seed one behind the caller's back; only
	// the Default… convenience constructors do.
	ErrNilRand = errors.New("encode: randomized policy requires a rand source")
)

// TieBreak selects how OrdinalPattern orders equal values.
//
//   - TieBreakRandom — break each tie uniformly at random. This is the
//     default because first-index tie-breaking introduces spurious temporal
//     correlation in low-resolution data. It is the one non-determinism
//     point of the encoding layer; tests needing reproducibility must
//     either inject a seeded rand source or select TieBreakStable.
//   - TieBreakStable — the value appearing first in the vector sorts first.
//     Deterministic; reproduces classical ordinal-pattern results.
type TieBreak int

const (
	// TieBreakRandom breaks ties uniformly at random (default policy).
	TieBreakRandom TieBreak = iota
	// TieBreakStable breaks ties by first index of appearance.
	TieBreakStable
)

// Metric selects the distance used by PairDistance.
type Metric int

const (
	// MetricEuclidean is the L2 distance.
	MetricEuclidean Metric = iota
	// MetricManhattan is the L1 distance.
	MetricManhattan
	// MetricChebyshev is the L∞ distance.
	MetricChebyshev
)
