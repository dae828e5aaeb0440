// File: problem.go
// Role: Flux balance LP snapshot of a core.Model.
//
// A Problem copies the stoichiometric matrix, the bounds and the objective of
// a model at construction time. Later changes to the model are not seen, and
// bound/objective edits on the Problem never reach the model, which lets
// Variability run thousands of solves without touching shared state.

package flux

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/matrix"
)

// Problem is max/min c·v subject to S·v = 0 and lower ≤ v ≤ upper.
type Problem struct {
	s            *matrix.StoichiometricMatrix
	lower, upper []float64
	objective    int
	sense        Sense
}

// NewProblem snapshots m. The objective is copied when set; a Problem without
// objective can still be given one with SetObjective.
//
// Complexity: O(M·R).
func NewProblem(m *core.Model) (*Problem, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	s, err := matrix.NewStoichiometricMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("flux: NewProblem: %w", err)
	}

	p := &Problem{
		s:         s,
		lower:     make([]float64, len(s.Reactions)),
		upper:     make([]float64, len(s.Reactions)),
		objective: -1,
	}
	snap := m.SnapshotBounds()
	for j, id := range s.Reactions {
		b := snap[id]
		p.lower[j], p.upper[j] = b[0], b[1]
	}
	if id, sense, err := m.Objective(); err == nil {
		p.objective, p.sense = s.ReactionIndex[id], sense
	}

	return p, nil
}

// Clone returns an independent copy; the stoichiometric matrix is shared
// because it is never mutated.
func (p *Problem) Clone() *Problem {
	cp := *p
	cp.lower = append([]float64(nil), p.lower...)
	cp.upper = append([]float64(nil), p.upper...)

	return &cp
}

// Reactions returns the reaction IDs in column order (sorted).
func (p *Problem) Reactions() []string {
	return append([]string(nil), p.s.Reactions...)
}

// Stoichiometry exposes the underlying matrix.
func (p *Problem) Stoichiometry() *matrix.StoichiometricMatrix { return p.s }

func (p *Problem) column(id string) (int, error) {
	j, ok := p.s.ReactionIndex[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrReactionNotFound)
	}

	return j, nil
}

// Bounds returns the bounds of reaction id.
func (p *Problem) Bounds(id string) (lo, hi float64, err error) {
	j, err := p.column(id)
	if err != nil {
		return 0, 0, err
	}

	return p.lower[j], p.upper[j], nil
}

// SetBounds replaces the bounds of reaction id.
// Errors: ErrReactionNotFound, core.ErrInvalidBounds.
func (p *Problem) SetBounds(id string, lo, hi float64) error {
	j, err := p.column(id)
	if err != nil {
		return err
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return fmt.Errorf("flux: SetBounds(%q, %g, %g): %w", id, lo, hi, core.ErrInvalidBounds)
	}
	p.lower[j], p.upper[j] = lo, hi

	return nil
}

// SetObjective makes reaction id the objective with the given sense.
func (p *Problem) SetObjective(id string, sense Sense) error {
	j, err := p.column(id)
	if err != nil {
		return err
	}
	p.objective, p.sense = j, sense

	return nil
}

// Objective returns the objective reaction and sense, or ErrNoObjective.
func (p *Problem) Objective() (string, Sense, error) {
	if p.objective < 0 {
		return "", Maximize, ErrNoObjective
	}

	return p.s.Reactions[p.objective], p.sense, nil
}

// Solve optimises the objective.
//
// Steps:
//  1. Convert to standard form (see standard.go).
//  2. Reduce the equality system to full row rank and solve with gonum's simplex.
//  3. Map the standard-form solution back to reaction fluxes.
//
// On Infeasible/Unbounded/Failed the returned Solution carries the Status and
// the error wraps ErrInfeasible, ErrUnbounded or ErrSolverFailed.
func (p *Problem) Solve(opts Options) (Solution, error) {
	if err := opts.normalize(); err != nil {
		return Solution{Status: Failed}, err
	}
	if p.objective < 0 {
		return Solution{Status: Failed}, ErrNoObjective
	}
	objID := p.s.Reactions[p.objective]

	sf, err := newStandardForm(p)
	if err == nil {
		var x []float64
		if x, err = sf.solve(opts.Tolerance); err == nil {
			fluxes := sf.fluxes(x, p.s.Reactions)
			opts.Logger.Debug("flux: solved",
				"objective", objID, "sense", p.sense.String(), "value", fluxes[objID])

			return Solution{Status: Optimal, ObjectiveValue: fluxes[objID], Fluxes: fluxes}, nil
		}
	}

	status := statusOf(err)
	opts.Logger.Debug("flux: solve failed", "objective", objID, "status", status.String(), "err", err)

	return Solution{Status: status}, fmt.Errorf("flux: optimise %q: %w", objID, err)
}
