// Package estimator converts counted outcomes into normalized probability
// distributions, with a pluggable choice of statistical regularization.
//
// 🚀 Estimators provided:
//
//	• RelativeAmount — the plug-in / maximum-likelihood estimate
//	  p_k = n_k / n; also the fallback for pseudo-count spaces, where the
//	  values are normalized by their own sum instead of a sample size
//	• Bayes          — Dirichlet-prior regularization
//	  p_k = (n_k + a_k) / (n + Σa); a = 0 is plug-in, a = 0.5 Jeffreys,
//	  a = 1 Bayes–Laplace
//	• Shrinkage      — James–Stein shrinkage toward a target distribution,
//	  p_k = λ·t_k + (1−λ)·p̂_k, with λ fixed by the caller or estimated
//	  analytically (Hausser–Strimmer)
//
// Observed-only and all-outcomes estimation are separate entry points,
// Probabilities and AllProbabilities, never a hidden default: for any
// estimator with a non-uniform prior or target the two modes genuinely
// differ, because the all-outcomes mode assigns explicit (possibly
// nonzero) probability to outcomes never seen in the sample.
//
// Bayes and Shrinkage interpret histogram values as occurrence counts, so
// they reject outcome spaces flagged as not count-based (weighted ordinal
// patterns, spectral energies) with ErrNotCountBased. RelativeAmount
// accepts every space.
//
// Every estimator is an immutable value, safe for concurrent use on
// independent data.
package estimator
