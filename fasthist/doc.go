// Package fasthist is the counting kernel of probspace: it turns a sequence
// of integer symbols into run-length counts over the sorted unique symbols.
//
// The kernel sorts its argument and scans once, so a full histogram costs
// O(n log n) time and O(1) extra space beyond the output.
//
// ⚠️ Aliasing contract: Counts and WeightedCounts sort the caller's slices
// IN PLACE — they take ownership of the buffers for the duration of the
// call and leave them sorted. Several call sites rely on that side effect
// to avoid re-sorting. Callers that need the original order must use the
// CountsCopy / WeightedCountsCopy wrappers, which copy first.
//
// The weighted variant sums a real-valued weight per run instead of
// counting occurrences. Its output is NOT a true integer histogram; outcome
// spaces built on it must flag their results as pseudo-counts so that
// estimators requiring true counts can reject them.
package fasthist
