// File: result.go
// Role: Scan result and its read-only accessors.
// Every accessor returns a copy; mutating it never changes the Result.

package fseof

import (
	"errors"
	"math"
	"sort"
)

// StepInfo describes one row of the scan.
//   - Value: scheduled enforced flux (the baseline flux for step 0).
//   - EnforcedFlux, ObjectiveFlux: solved fluxes; NaN when !Feasible.
type StepInfo struct {
	Step          int
	Value         float64
	EnforcedFlux  float64
	ObjectiveFlux float64
	Feasible      bool
}

// Missing counts the data a Result lacks.
//   - Steps: infeasible enforced steps (whole rows missing).
//   - VariabilityCells: failed (step, reaction) variability cells.
type Missing struct {
	Steps            int
	VariabilityCells int
}

// Ranked pairs a target reaction with its classification.
type Ranked struct {
	Reaction string
	Classification
}

// Result is the outcome of a successful scan.
type Result struct {
	enforced    string
	objective   string
	direction   Direction
	schedule    Schedule
	steps       []StepInfo
	scan        *FluxTable
	classes     map[string]Classification
	variability *RangeTable
	stepErrors  []StepInfeasible
	cellErrors  []VariabilityStepFailed
}

// Enforced returns the enforced reaction ID.
func (r *Result) Enforced() string { return r.enforced }

// Objective returns the primary objective reaction ID.
func (r *Result) Objective() string { return r.objective }

// Direction returns the enforcement direction.
func (r *Result) Direction() Direction { return r.direction }

// Schedule returns the enforcement schedule.
func (r *Result) Schedule() Schedule {
	s := r.schedule
	s.Points = append([]float64(nil), s.Points...)

	return s
}

// Steps returns one StepInfo per row, step 0 first.
func (r *Result) Steps() []StepInfo { return append([]StepInfo(nil), r.steps...) }

// Scan returns the step × reaction flux table.
func (r *Result) Scan() *FluxTable { return r.scan.Clone() }

// Classifications returns the verdict for every tracked reaction.
func (r *Result) Classifications() map[string]Classification {
	out := make(map[string]Classification, len(r.classes))
	for id, c := range r.classes {
		out[id] = c
	}

	return out
}

// Classification returns the verdict for one reaction.
func (r *Result) Classification(id string) (Classification, bool) {
	c, ok := r.classes[id]

	return c, ok
}

// Variability returns the range table, or nil when it was not computed.
func (r *Result) Variability() *RangeTable {
	if r.variability == nil {
		return nil
	}

	return r.variability.Clone()
}

// Targets returns the IDs of target reactions, sorted.
func (r *Result) Targets() []string { return targetsOf(r.classes) }

// Ranked returns the targets ordered by variability rank (descending), then
// Consistency (descending), then |NetChange| (descending), then ID.
func (r *Result) Ranked() []Ranked {
	out := make([]Ranked, 0)
	for _, id := range targetsOf(r.classes) {
		out = append(out, Ranked{Reaction: id, Classification: r.classes[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Rank != b.Rank {
			return a.Rank > b.Rank
		}
		if ca, cb := a.Consistency(), b.Consistency(); ca != cb {
			return ca > cb
		}
		if na, nb := math.Abs(a.NetChange), math.Abs(b.NetChange); na != nb {
			return na > nb
		}

		return a.Reaction < b.Reaction
	})

	return out
}

// Missing reports how much data the scan lacks.
func (r *Result) Missing() Missing {
	return Missing{Steps: len(r.stepErrors), VariabilityCells: len(r.cellErrors)}
}

// StepErrors returns the recovered step failures in step order.
func (r *Result) StepErrors() []StepInfeasible {
	return append([]StepInfeasible(nil), r.stepErrors...)
}

// VariabilityErrors returns the recovered variability cell failures.
func (r *Result) VariabilityErrors() []VariabilityStepFailed {
	return append([]VariabilityStepFailed(nil), r.cellErrors...)
}

// Err joins every recovered failure, or returns nil for a complete scan.
func (r *Result) Err() error {
	errs := make([]error, 0, len(r.stepErrors)+len(r.cellErrors))
	for _, e := range r.stepErrors {
		errs = append(errs, e)
	}
	for _, e := range r.cellErrors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

func targetsOf(classes map[string]Classification) []string {
	ids := make([]string, 0)
	for id, c := range classes {
		if c.Target {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}
