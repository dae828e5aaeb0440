// File: fba.go
// Role: Flux balance analysis entry points and the default Solver.

package flux

import (
	"github.com/katalvlaran/fseof/core"
)

// Optimize solves flux balance analysis on m: it optimises the model's
// objective under the model's current bounds. The model is only read.
//
// Errors:
//   - ErrNilModel, ErrNoObjective.
//   - ErrInfeasible / ErrUnbounded / ErrSolverFailed (wrapped) with the
//     matching Solution.Status.
//
// Complexity: one stoichiometric build O(M·R) plus one simplex solve.
func Optimize(m *core.Model, opts Options) (Solution, error) {
	if m == nil {
		return Solution{Status: Failed}, ErrNilModel
	}
	if _, _, err := m.Objective(); err != nil {
		return Solution{Status: Failed}, ErrNoObjective
	}
	p, err := NewProblem(m)
	if err != nil {
		return Solution{Status: Failed}, err
	}

	return p.Solve(opts)
}

// Simplex is the default Solver backed by gonum's lp.Simplex.
type Simplex struct {
	Options Options
}

// NewSimplex returns a Simplex solver with the given options.
func NewSimplex(opts Options) *Simplex {
	return &Simplex{Options: opts}
}

// DefaultSolver returns a Simplex solver with DefaultOptions.
func DefaultSolver() Solver {
	return NewSimplex(DefaultOptions())
}

// Optimize implements Solver.
func (s *Simplex) Optimize(m *core.Model) (Solution, error) {
	return Optimize(m, s.Options)
}
