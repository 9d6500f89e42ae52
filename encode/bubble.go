package encode

import "fmt"

// BubbleSwaps encodes an m-vector as the number of adjacent transpositions
// bubble sort needs to sort it ascending, which equals the vector's
// inversion count. Symbols live in [0, m(m−1)/2] and the alphabet has
// m(m−1)/2 + 1 outcomes.
//
// The map is many-to-one (distinct permutations share a swap count), so
// Decode is unsupported.
type BubbleSwaps struct {
	m int
}

// NewBubbleSwaps builds the swap-count encoder for m-vectors.
// Errors: ErrBadDimension (m < 2).
func NewBubbleSwaps(m int) (*BubbleSwaps, error) {
	if m < 2 {
		return nil, fmt.Errorf("NewBubbleSwaps(m=%d): %w", m, ErrBadDimension)
	}

	return &BubbleSwaps{m: m}, nil
}

// M returns the vector dimension.
func (e *BubbleSwaps) M() int { return e.m }

// TotalOutcomes returns m(m−1)/2 + 1.
func (e *BubbleSwaps) TotalOutcomes() int { return e.m*(e.m-1)/2 + 1 }

// Encode counts the inversions of v, i.e. ordered pairs i < j with
// v[i] > v[j]. Zero iff v is already sorted ascending; maximal, m(m−1)/2,
// for a strictly descending vector.
// Errors: ErrPointDimension.
// Complexity: O(m²), fine for the small m this encoding is used with.
func (e *BubbleSwaps) Encode(v []float64) (int, error) {
	if len(v) != e.m {
		return 0, fmt.Errorf("BubbleSwaps.Encode(len=%d, m=%d): %w", len(v), e.m, ErrPointDimension)
	}
	swaps := 0
	for i := 0; i < e.m-1; i++ {
		for j := i + 1; j < e.m; j++ {
			if v[i] > v[j] {
				swaps++
			}
		}
	}

	return swaps, nil
}

// Decode always fails: the swap count does not determine a permutation.
func (e *BubbleSwaps) Decode(int) ([]float64, error) {
	return nil, fmt.Errorf("BubbleSwaps.Decode: %w", ErrNotInvertible)
}
