// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer under flux analysis.
//
// What & Why:
//
//	A metabolic network at steady state is the linear system S·v = 0, where S
//	is the metabolite × reaction stoichiometric matrix. This package builds S
//	from a core.Model with deterministic axis order, and reduces equality
//	systems to full row rank so that standard-form simplex solvers accept them.
//
// Contents:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set returning
//     errors, and a Gonum bridge producing *mat.Dense.
//   - StoichiometricMatrix: S plus metabolite/reaction indexes; Balance
//     computes S·v for steady-state checks.
//   - RowReduce: Gaussian elimination with partial pivoting on [A|b],
//     returning the equivalent full-row-rank system or ErrInconsistent.
//
// Options:
//
//	WithEpsilon(eps)        relative pivot tolerance (default 1e-9)
//	WithNoValidateNaNInf()  allow NaN/Inf in Set
//
// Complexity:
//
//	NewStoichiometricMatrix O(M·R); RowReduce O(m·n·min(m,n)).
package matrix
