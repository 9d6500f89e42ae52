// Package transferop estimates the transfer operator of a sequential
// trajectory over rectangular bins, and the invariant (stationary)
// distribution of that operator.
//
// 🚀 How it works:
//
//  1. Every trajectory point is encoded into its bin with a rectangular
//     binning; only bins actually visited enter the state space.
//  2. Transitions bin(t) → bin(t+1) are tallied and each row is normalized
//     by the number of departures from its bin, giving a row-stochastic
//     transition matrix T.
//  3. The globally-last point has no successor; an explicit boundary
//     policy decides its image (wrap to the trajectory's first bin, or a
//     uniformly random visited bin). This is a user-facing modeling
//     choice, not a hidden default — the "correct" boundary condition for
//     finite trajectories is an open question in the source literature.
//  4. The stationary ρ with ρT = ρ is found by power iteration from a
//     random normalized start vector, with periodic renormalization
//     against floating-point drift.
//
// Hitting the iteration cap without reaching the tolerance is NOT fatal:
// the best-effort ρ is returned, and AchievedTolerance / Converged let
// callers detect marginal convergence.
//
// The transition matrix is built on gonum's dense linear algebra; the
// invariant distribution is returned as a prob.Probabilities over the
// visited bins (outcomes are per-axis bin coordinates).
package transferop
