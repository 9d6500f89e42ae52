package outcome

import (
	"github.com/katalvlaran/probspace/fasthist"
	"github.com/katalvlaran/probspace/prob"
)

// UniqueElements is the simplest outcome space: every distinct value of
// the series is its own outcome. The alphabet is fully data-dependent, so
// AllCounts coincides with Counts and TotalOutcomes has no closed form.
type UniqueElements struct{}

// NewUniqueElements returns the (stateless) unique-elements space.
func NewUniqueElements() UniqueElements { return UniqueElements{} }

var _ Space[float64] = UniqueElements{}

// Counts histograms the distinct values of xs, outcomes in ascending
// value order. The caller's slice is left untouched.
// Errors: prob.ErrEmptyData.
// Complexity: O(N log N).
func (UniqueElements) Counts(xs []float64) (prob.Counts[float64], error) {
	if len(xs) == 0 {
		return prob.Counts[float64]{}, prob.ErrEmptyData
	}
	scratch := make([]float64, len(xs))
	copy(scratch, xs)
	counts, uniq := fasthist.CountsFloat64(scratch)

	return prob.NewCounts(counts, uniq)
}

// AllCounts equals Counts: the observed values ARE the alphabet.
func (u UniqueElements) AllCounts(xs []float64) (prob.Counts[float64], error) {
	return u.Counts(xs)
}

// TotalOutcomes always returns ErrUnknownAlphabet: the alphabet size is
// the number of distinct values, which only the data knows.
func (UniqueElements) TotalOutcomes() (int, error) {
	return 0, ErrUnknownAlphabet
}

// CountBased reports true: the histogram holds occurrence counts.
func (UniqueElements) CountBased() bool { return true }
