package encode

import (
	"fmt"
	"math/rand"
	"time"
)

// OrdinalPattern encodes an m-vector by the permutation that sorts it
// ascending, mapped to a unique integer in [0, m!) via the Lehmer code.
//
// Permutations are represented 0-based as argsort indices: Permutation
// returns p with p[0] the index of the smallest element, p[m-1] the index
// of the largest.
//
// Equal values are ordered by the configured TieBreak policy; with
// TieBreakRandom the encoder consumes its rand source and is NOT safe for
// concurrent use.
type OrdinalPattern struct {
	m    int
	tie  TieBreak
	rng  *rand.Rand
	fact []int // fact[i] == i!
}

// NewOrdinalPattern builds an ordinal-pattern encoder of dimension m with
// the given tie-breaking policy. rng is required for TieBreakRandom and
// ignored for TieBreakStable; this constructor never seeds a generator
// itself.
// Errors: ErrBadDimension (m < 2), ErrNilRand.
func NewOrdinalPattern(m int, tie TieBreak, rng *rand.Rand) (*OrdinalPattern, error) {
	if m < 2 {
		return nil, fmt.Errorf("NewOrdinalPattern(m=%d): %w", m, ErrBadDimension)
	}
	if tie == TieBreakRandom && rng == nil {
		return nil, fmt.Errorf("NewOrdinalPattern: %w", ErrNilRand)
	}
	fact := make([]int, m+1)
	fact[0] = 1
	for i := 1; i <= m; i++ {
		fact[i] = fact[i-1] * i
	}

	return &OrdinalPattern{m: m, tie: tie, rng: rng, fact: fact}, nil
}

// DefaultOrdinalPattern is the convenience constructor: random tie-breaking
// with a time-seeded generator. This is the only place the package seeds
// randomness; everything below it takes the source as a parameter.
func DefaultOrdinalPattern(m int) (*OrdinalPattern, error) {
	return NewOrdinalPattern(m, TieBreakRandom, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// M returns the pattern dimension.
func (e *OrdinalPattern) M() int { return e.m }

// TotalOutcomes returns m!, the size of the pattern alphabet.
func (e *OrdinalPattern) TotalOutcomes() int { return e.fact[e.m] }

// Permutation returns the argsort permutation of v under the configured
// tie-break policy.
// Stage 1 (Validate): len(v) must equal m.
// Stage 2 (Execute): insertion-sort an index slice by value. Insertion
// sort tolerates the intransitive comparisons a random tie-break produces,
// which library sorts do not guarantee.
// Complexity: O(m²), negligible for the small m ordinal analysis uses.
func (e *OrdinalPattern) Permutation(v []float64) ([]int, error) {
	if len(v) != e.m {
		return nil, fmt.Errorf("OrdinalPattern.Permutation(len=%d, m=%d): %w", len(v), e.m, ErrPointDimension)
	}
	p := make([]int, e.m)
	for i := range p {
		p[i] = i
	}
	for i := 1; i < e.m; i++ {
		for j := i; j > 0 && e.less(v[p[j]], v[p[j-1]]); j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}

	return p, nil
}

// less orders two values under the tie-break policy. For TieBreakStable a
// tie reports false, which leaves insertion order (first index) intact.
func (e *OrdinalPattern) less(a, b float64) bool {
	if a == b && e.tie == TieBreakRandom {
		return e.rng.Intn(2) == 0
	}

	return a < b
}

// Encode maps v to the Lehmer code of its argsort permutation, a unique
// integer in [0, m!).
// Complexity: O(m²).
func (e *OrdinalPattern) Encode(v []float64) (int, error) {
	p, err := e.Permutation(v)
	if err != nil {
		return 0, err
	}

	return e.EncodePermutation(p)
}

// EncodePermutation maps a 0-based permutation of {0,…,m−1} to its Lehmer
// code: sym = Σᵢ invᵢ·(m−1−i)! where invᵢ counts later entries smaller
// than p[i]. The map is a bijection onto [0, m!).
func (e *OrdinalPattern) EncodePermutation(p []int) (int, error) {
	if len(p) != e.m {
		return 0, fmt.Errorf("OrdinalPattern.EncodePermutation(len=%d, m=%d): %w", len(p), e.m, ErrPointDimension)
	}
	sym := 0
	for i := 0; i < e.m-1; i++ {
		inv := 0
		for j := i + 1; j < e.m; j++ {
			if p[j] < p[i] {
				inv++
			}
		}
		sym += inv * e.fact[e.m-1-i]
	}

	return sym, nil
}

// Decode inverts the Lehmer code: it returns the 0-based argsort
// permutation whose Encode equals sym.
// Errors: ErrBadSymbol for sym outside [0, m!).
// Complexity: O(m²).
func (e *OrdinalPattern) Decode(sym int) ([]int, error) {
	if sym < 0 || sym >= e.fact[e.m] {
		return nil, fmt.Errorf("OrdinalPattern.Decode(%d): %w", sym, ErrBadSymbol)
	}

	// Extract factorial-base digits, then pick the digit-th remaining
	// element for each position.
	remaining := make([]int, e.m)
	for i := range remaining {
		remaining[i] = i
	}
	p := make([]int, e.m)
	for i := 0; i < e.m; i++ {
		f := e.fact[e.m-1-i]
		d := sym / f
		sym %= f
		p[i] = remaining[d]
		remaining = append(remaining[:d], remaining[d+1:]...)
	}

	return p, nil
}
