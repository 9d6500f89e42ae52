// Package prob defines core types and sentinel errors shared by the whole
// probspace pipeline.
package prob

import "errors"

// NormTolerance is the absolute tolerance within which a probability vector
// must sum to 1.
const NormTolerance = 1e-9

// Sentinel errors for prob constructors and pipeline entry points.
var (
	// ErrEmptyData indicates an operation received a zero-length data series.
	ErrEmptyData = errors.New("prob: input data must be non-empty")
	// ErrLengthMismatch indicates parallel value/outcome slices differ in length.
	ErrLengthMismatch = errors.New("prob: values and outcomes must have equal length")
	// ErrNegativeValue indicates a probability or count below zero.
	ErrNegativeValue = errors.New("prob: values must be non-negative")
	// ErrNotNormalized indicates a probability vector that does not sum to 1
	// within NormTolerance.
	ErrNotNormalized = errors.New("prob: probabilities must sum to 1")
)
