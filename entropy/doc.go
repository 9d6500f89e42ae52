// Package entropy provides the consumer side of the estimation pipeline:
// scalar information and regularity measures computed from a probability
// vector, or directly from a raw series.
//
// 🚀 Measures provided:
//
//	• Shannon          — H = −Σ p·ln p
//	• Renyi(q)         — H_q = ln(Σ p^q) / (1−q), Shannon at q → 1
//	• Tsallis(q)       — S_q = (1 − Σ p^q) / (q−1), Shannon at q → 1
//	• Sample           — SampEn(m, r) template-matching regularity
//	• Approximate      — ApEn(m, r) with self-matching templates
//
// ✨ Two call styles:
//
// The distribution measures take a plain probability vector, so any
// estimator output plugs in via Probs(); the Of variants bundle the whole
// (estimator, space, data) round trip into one call:
//
//	h, err := entropy.ShannonOf[[]int](estimator.DefaultBayes(), space, xs)
//
// ⚙️ Degenerate data: Sample returns NaN, not an error, when a series has
// no template matches at the required embedding order. That outcome is an
// expected property of short or highly irregular data, not a misuse of
// the function.
//
// All measures use natural logarithms.
package entropy
