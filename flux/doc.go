// Package flux implements constraint-based flux analysis on *core.Model
// using gonum's simplex (gonum.org/v1/gonum/optimize/convex/lp).
//
// The steady-state LP is
//
//	max (or min)  v_obj
//	subject to    S·v = 0
//	              lower ≤ v ≤ upper
//
// where S is the stoichiometric matrix built by package matrix.
//
// # Operations
//
//   - Optimize(m, opts): flux balance analysis of the model's current objective.
//   - Variability(m, ids, opts): flux variability analysis; every reaction's
//     feasible [min, max] with the objective held at FractionOfOptimum.
//   - Problem: a detached snapshot of a model whose bounds and objective can be
//     edited and re-solved without touching the model.
//
// # Solver capability
//
// Scans do not call Optimize directly. They consume the Solver interface, so
// callers can inject any objective-solve function through SolverFunc.
// Simplex is the default implementation.
//
// # Standard form
//
// Bounds are folded into x ≥ 0 by shifting (finite lower), mirroring (only
// finite upper) or splitting (free) each flux; finite ranges add one slack
// row. Dependent equality rows are removed by matrix.RowReduce before the
// simplex call.
//
// # Errors
//
//	ErrInfeasible    no feasible flux distribution
//	ErrUnbounded     objective unbounded
//	ErrSolverFailed  numeric failure inside gonum
//	ErrNoObjective   model has no objective reaction
//
// Solution.Status mirrors the error so callers may branch on either.
package flux
