// File: fva.go
// Role: Flux variability analysis.
//
// For each requested reaction the feasible [min, max] is computed with the
// model objective held at FractionOfOptimum of its optimum. The objective
// floor is applied as a bound on the objective reaction of a private Problem
// snapshot; the model itself is never mutated.

package flux

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fseof/core"
)

// floorSlack relaxes the objective floor relative to |optimum| so that the
// optimum found by the first solve stays feasible in the follow-up solves.
const floorSlack = 1e-7

// VariabilityResult holds per-reaction ranges.
//   - Ranges: successfully computed ranges.
//   - Failed: reactions whose min or max solve failed, with the error.
//   - Objective: the optimum the floor was derived from.
type VariabilityResult struct {
	Ranges    map[string]Range
	Failed    map[string]error
	Objective float64
}

// Variability runs flux variability analysis on m for the reactions ids
// (all reactions when ids is empty).
//
// Steps:
//  1. Snapshot m into a Problem and solve its objective (fatal on failure).
//  2. Bound the objective reaction by the floor
//     z − (1 − f)·|z| (maximise) or the ceiling z + (1 − f)·|z| (minimise).
//  3. For each reaction minimise, then maximise it; a failure of either
//     solve records the reaction in Failed and continues.
//
// Errors:
//   - ErrNilModel, ErrNoObjective, ErrInvalidFraction, ErrReactionNotFound.
//   - The wrapped error of the initial objective solve.
//   - opts.Ctx.Err() when cancelled between reactions.
//
// Complexity: 1 + 2·len(ids) simplex solves.
func Variability(m *core.Model, ids []string, opts Options) (*VariabilityResult, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	base, err := NewProblem(m)
	if err != nil {
		return nil, err
	}
	objID, sense, err := base.Objective()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = base.Reactions()
	}
	for _, id := range ids {
		if _, err = base.column(id); err != nil {
			return nil, fmt.Errorf("flux: Variability: %w", err)
		}
	}

	sol, err := base.Solve(opts)
	if err != nil {
		return nil, err
	}
	z := sol.ObjectiveValue
	if err = applyFloor(base, objID, sense, z, opts.FractionOfOptimum); err != nil {
		return nil, err
	}

	res := &VariabilityResult{
		Ranges:    make(map[string]Range, len(ids)),
		Failed:    make(map[string]error),
		Objective: z,
	}
	for _, id := range ids {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		r, err := solveRange(base, id, opts)
		if err != nil {
			opts.Logger.Debug("flux: variability failed", "reaction", id, "err", err)
			res.Failed[id] = err
			continue
		}
		res.Ranges[id] = r
	}

	return res, nil
}

// applyFloor tightens the objective reaction so it stays within fraction f of z.
func applyFloor(p *Problem, objID string, sense Sense, z, f float64) error {
	lo, hi, err := p.Bounds(objID)
	if err != nil {
		return err
	}
	slack := (1-f)*math.Abs(z) + floorSlack*math.Max(1, math.Abs(z))
	if sense == Minimize {
		return p.SetBounds(objID, lo, math.Max(lo, math.Min(hi, z+slack)))
	}

	return p.SetBounds(objID, math.Min(hi, math.Max(lo, z-slack)), hi)
}

// solveRange minimises and maximises reaction id on a copy of p.
func solveRange(p *Problem, id string, opts Options) (Range, error) {
	q := p.Clone()
	var r Range
	for _, sense := range []Sense{Minimize, Maximize} {
		if err := q.SetObjective(id, sense); err != nil {
			return Range{}, err
		}
		sol, err := q.Solve(opts)
		if err != nil {
			return Range{}, err
		}
		if sense == Minimize {
			r.Min = sol.ObjectiveValue
		} else {
			r.Max = sol.ObjectiveValue
		}
	}

	return r, nil
}

// VariabilityFunc is the variability capability: ranges for ids under the
// model's current bounds and objective.
type VariabilityFunc func(m *core.Model, ids []string) (*VariabilityResult, error)

// DefaultVariability returns Variability bound to opts.
func DefaultVariability(opts Options) VariabilityFunc {
	return func(m *core.Model, ids []string) (*VariabilityResult, error) {
		return Variability(m, ids, opts)
	}
}
