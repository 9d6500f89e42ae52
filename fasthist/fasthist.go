package fasthist

import (
	"errors"
	"sort"
)

// ErrLengthMismatch indicates symbol and weight slices of differing lengths.
var ErrLengthMismatch = errors.New("fasthist: symbols and weights must have equal length")

// Counts sorts syms in place, then run-length scans it.
// It returns the count of each distinct symbol and the distinct symbols
// themselves, both in ascending symbol order.
//
// ⚠️ Mutates syms: the slice is left sorted. Use CountsCopy to preserve
// the caller's ordering.
//
// Stage 1 (Sort): O(n log n) in-place comparison sort.
// Stage 2 (Scan): one linear pass accumulating run lengths.
// Complexity: O(n log n) time, O(k) output for k distinct symbols.
func Counts(syms []int) (counts []int, uniq []int) {
	if len(syms) == 0 {
		return nil, nil
	}
	sort.Ints(syms)

	// Scan runs of equal symbols.
	prev := syms[0]
	run := 1
	for _, s := range syms[1:] {
		if s == prev {
			run++
			continue
		}
		counts = append(counts, run)
		uniq = append(uniq, prev)
		prev, run = s, 1
	}
	counts = append(counts, run)
	uniq = append(uniq, prev)

	return counts, uniq
}

// CountsCopy is the non-mutating wrapper around Counts: it copies syms
// first, so the caller's slice keeps its order.
// Complexity: O(n log n) time, O(n) extra memory for the copy.
func CountsCopy(syms []int) (counts []int, uniq []int) {
	scratch := make([]int, len(syms))
	copy(scratch, syms)

	return Counts(scratch)
}

// CountsFloat64 is Counts over real-valued symbols, for outcome spaces
// whose alphabet is the set of distinct data values itself. Same in-place
// sorting contract as Counts.
// Complexity: O(n log n).
func CountsFloat64(vals []float64) (counts []int, uniq []float64) {
	if len(vals) == 0 {
		return nil, nil
	}
	sort.Float64s(vals)

	prev := vals[0]
	run := 1
	for _, v := range vals[1:] {
		if v == prev {
			run++
			continue
		}
		counts = append(counts, run)
		uniq = append(uniq, prev)
		prev, run = v, 1
	}
	counts = append(counts, run)
	uniq = append(uniq, prev)

	return counts, uniq
}

// WeightedCounts sorts syms and weights jointly by symbol (both slices are
// mutated), then sums the weight of each run instead of counting
// occurrences. It returns the per-symbol weight sums and the distinct
// symbols in ascending order.
//
// The result is a pseudo-count histogram: weight sums are not occurrence
// counts, and consumers must not treat them as such.
//
// Complexity: O(n log n) time, O(n) scratch for the joint permutation.
func WeightedCounts(syms []int, weights []float64) (sums []float64, uniq []int, err error) {
	if len(syms) != len(weights) {
		return nil, nil, ErrLengthMismatch
	}
	if len(syms) == 0 {
		return nil, nil, nil
	}

	// Sort an index permutation by symbol, then apply it to both slices.
	perm := make([]int, len(syms))
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return syms[perm[a]] < syms[perm[b]] })

	sortedSyms := make([]int, len(syms))
	sortedWts := make([]float64, len(weights))
	for i, p := range perm {
		sortedSyms[i] = syms[p]
		sortedWts[i] = weights[p]
	}
	copy(syms, sortedSyms)
	copy(weights, sortedWts)

	// Scan runs, summing weights per run.
	prev := syms[0]
	acc := weights[0]
	for i := 1; i < len(syms); i++ {
		if syms[i] == prev {
			acc += weights[i]
			continue
		}
		sums = append(sums, acc)
		uniq = append(uniq, prev)
		prev, acc = syms[i], weights[i]
	}
	sums = append(sums, acc)
	uniq = append(uniq, prev)

	return sums, uniq, nil
}

// WeightedCountsCopy is the non-mutating wrapper around WeightedCounts.
func WeightedCountsCopy(syms []int, weights []float64) (sums []float64, uniq []int, err error) {
	ss := make([]int, len(syms))
	copy(ss, syms)
	ws := make([]float64, len(weights))
	copy(ws, weights)

	return WeightedCounts(ss, ws)
}
