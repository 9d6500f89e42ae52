package entropy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/probspace/estimator"
	"github.com/katalvlaran/probspace/outcome"
	"github.com/katalvlaran/probspace/prob"
)

// Sentinel errors for measure parameters.
var (
	// ErrBadOrder indicates a Rényi/Tsallis order q ≤ 0.
	ErrBadOrder = errors.New("entropy: order q must be positive")
	// ErrBadEmbedding indicates an embedding dimension m < 1.
	ErrBadEmbedding = errors.New("entropy: embedding dimension must be at least 1")
	// ErrBadRadius indicates a negative match radius.
	ErrBadRadius = errors.New("entropy: match radius must be nonnegative")
	// ErrShortSeries indicates a series too short to form even two
	// templates of length m+1.
	ErrShortSeries = errors.New("entropy: series shorter than m+2 samples")
)

// validate checks that p is a probability vector: nonempty, nonnegative,
// unit mass within prob.NormTolerance.
func validate(p []float64) error {
	if len(p) == 0 {
		return prob.ErrEmptyData
	}
	sum := 0.0
	for _, v := range p {
		if v < 0 {
			return fmt.Errorf("entry %v: %w", v, prob.ErrNegativeValue)
		}
		sum += v
	}
	if math.Abs(sum-1) > prob.NormTolerance {
		return fmt.Errorf("sum %v: %w", sum, prob.ErrNotNormalized)
	}

	return nil
}

// Shannon computes H = −Σ pᵢ·ln pᵢ in nats. Zero entries contribute
// nothing (the 0·ln 0 := 0 convention).
// Errors: prob.ErrEmptyData, prob.ErrNegativeValue, prob.ErrNotNormalized.
// Complexity: O(k).
func Shannon(p []float64) (float64, error) {
	if err := validate(p); err != nil {
		return 0, fmt.Errorf("Shannon(): %w", err)
	}
	h := 0.0
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}

	return h, nil
}

// Renyi computes the order-q Rényi entropy H_q = ln(Σ pᵢ^q) / (1−q) in
// nats. At q = 1 the formula degenerates; the Shannon limit is returned.
// Errors: ErrBadOrder plus the probability-vector validation errors.
// Complexity: O(k).
func Renyi(p []float64, q float64) (float64, error) {
	if q <= 0 {
		return 0, fmt.Errorf("Renyi(q=%v): %w", q, ErrBadOrder)
	}
	if q == 1 {
		return Shannon(p)
	}
	if err := validate(p); err != nil {
		return 0, fmt.Errorf("Renyi(): %w", err)
	}
	sum := 0.0
	for _, v := range p {
		if v > 0 {
			sum += math.Pow(v, q)
		}
	}

	return math.Log(sum) / (1 - q), nil
}

// Tsallis computes the order-q Tsallis entropy S_q = (1 − Σ pᵢ^q) / (q−1).
// At q = 1 the Shannon limit is returned.
// Errors: ErrBadOrder plus the probability-vector validation errors.
// Complexity: O(k).
func Tsallis(p []float64, q float64) (float64, error) {
	if q <= 0 {
		return 0, fmt.Errorf("Tsallis(q=%v): %w", q, ErrBadOrder)
	}
	if q == 1 {
		return Shannon(p)
	}
	if err := validate(p); err != nil {
		return 0, fmt.Errorf("Tsallis(): %w", err)
	}
	sum := 0.0
	for _, v := range p {
		if v > 0 {
			sum += math.Pow(v, q)
		}
	}

	return (1 - sum) / (q - 1), nil
}

// ShannonOf estimates a distribution over the observed outcomes of sp and
// returns its Shannon entropy.
func ShannonOf[O any](e estimator.Estimator, sp outcome.Space[O], xs []float64) (float64, error) {
	p, err := estimator.Probabilities[O](e, sp, xs)
	if err != nil {
		return 0, err
	}

	return Shannon(p.Probs())
}

// RenyiOf estimates a distribution over the observed outcomes of sp and
// returns its order-q Rényi entropy.
func RenyiOf[O any](e estimator.Estimator, sp outcome.Space[O], xs []float64, q float64) (float64, error) {
	p, err := estimator.Probabilities[O](e, sp, xs)
	if err != nil {
		return 0, err
	}

	return Renyi(p.Probs(), q)
}

// TsallisOf estimates a distribution over the observed outcomes of sp and
// returns its order-q Tsallis entropy.
func TsallisOf[O any](e estimator.Estimator, sp outcome.Space[O], xs []float64, q float64) (float64, error) {
	p, err := estimator.Probabilities[O](e, sp, xs)
	if err != nil {
		return 0, err
	}

	return Tsallis(p.Probs(), q)
}
