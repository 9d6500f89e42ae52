package encode

import "fmt"

// Product composes k sub-symbols, each drawn from its own range [0, nᵢ),
// into a single linear symbol via mixed-radix (row-major) composition:
// the first sub-symbol is the most significant digit. TotalOutcomes is
// Πnᵢ, and Decode inverts exactly.
type Product struct {
	sizes   []int
	strides []int
	total   int
}

// NewProduct builds a mixed-radix composer over the given sub-ranges.
// Errors: ErrBadBinCount when any size is non-positive or no sizes given.
func NewProduct(sizes []int) (*Product, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("NewProduct: no radices: %w", ErrBadBinCount)
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("NewProduct(size=%d): %w", s, ErrBadBinCount)
		}
	}

	// Row-major strides: last axis varies fastest.
	strides := make([]int, len(sizes))
	stride := 1
	for i := len(sizes) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= sizes[i]
	}
	sc := make([]int, len(sizes))
	copy(sc, sizes)

	return &Product{sizes: sc, strides: strides, total: stride}, nil
}

// Dims returns the number of composed sub-ranges.
func (e *Product) Dims() int { return len(e.sizes) }

// TotalOutcomes returns Πnᵢ.
func (e *Product) TotalOutcomes() int { return e.total }

// Encode linearizes the sub-symbol tuple.
// Errors: ErrPointDimension on length mismatch, ErrBadSymbol when any
// sub-symbol leaves its range.
// Complexity: O(k).
func (e *Product) Encode(symbols []int) (int, error) {
	if len(symbols) != len(e.sizes) {
		return 0, fmt.Errorf("Product.Encode(len=%d, dims=%d): %w", len(symbols), len(e.sizes), ErrPointDimension)
	}
	sym := 0
	for i, s := range symbols {
		if s < 0 || s >= e.sizes[i] {
			return 0, fmt.Errorf("Product.Encode(axis=%d, symbol=%d): %w", i, s, ErrBadSymbol)
		}
		sym += s * e.strides[i]
	}

	return sym, nil
}

// Decode recovers the sub-symbol tuple by mixed-radix decomposition.
// Errors: ErrBadSymbol for sym outside [0, TotalOutcomes()).
// Complexity: O(k).
func (e *Product) Decode(sym int) ([]int, error) {
	if sym < 0 || sym >= e.total {
		return nil, fmt.Errorf("Product.Decode(%d): %w", sym, ErrBadSymbol)
	}
	out := make([]int, len(e.sizes))
	for i := range e.sizes {
		out[i] = sym / e.strides[i]
		sym %= e.strides[i]
	}

	return out, nil
}
