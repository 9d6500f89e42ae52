// Package probspace turns raw numeric time series into discrete outcome
// spaces and well-defined probability distributions over them — the common
// substrate under entropy and complexity estimation.
//
// 🚀 What is probspace?
//
//	A batch-oriented, single-threaded library that brings together:
//		• Encodings: ordinal patterns (Lehmer code), rectangular bins,
//		  Gaussian-CDF discretization, bubble-swap counts, mixed-radix
//		  products, pair-distance bins
//		• Outcome spaces: UniqueElements, OrdinalPatterns, Dispersion,
//		  ValueBinning, PowerSpectrum — all sharing one Space contract
//		• A fast run-length counting kernel (plain and weighted)
//		• Probability estimators: relative amount (plug-in), Bayesian
//		  regularization, James–Stein shrinkage
//		• Transfer operator over rectangular bins with its invariant measure
//		• Consumer measures: Shannon, Rényi, Tsallis, SampEn, ApEn
//
// ✨ Why choose probspace?
//
//   - Explicit configuration – every space and estimator is a plain,
//     immutable options struct; no hidden global defaults
//   - Deterministic on demand – every randomized step (ordinal tie-breaks,
//     power-iteration start, random boundary bins) takes an injectable
//     rand source
//   - Honest edge cases – unobserved outcomes, out-of-range points,
//     pseudo-count spaces and degenerate data all have documented,
//     tested semantics
//
// Everything is organized under focused subpackages:
//
//	prob/       — Probabilities & Counts core types and invariants
//	fasthist/   — sorted run-length counting kernel
//	encode/     — point → symbol encodings and their inverses
//	outcome/    — outcome spaces and delay embedding
//	estimator/  — probability estimators over counted outcomes
//	transferop/ — transfer operator & invariant measure
//	spectral/   — power-spectrum outcome space (pseudo-counts)
//	entropy/    — entropy & complexity consumer measures
//
// Data flow:
//
//	series ──embed──▶ vectors ──encode──▶ symbols ──count──▶ Counts
//	            Counts ──estimate──▶ Probabilities ──▶ entropy / complexity
//
//	go get github.com/katalvlaran/probspace
package probspace
