// File: sweep.go
// Role: Enforcement sweep engine.
//
// Stages of Run:
//  1. Validate the Config against the model and acquire the model.
//  2. Baseline: maximise the primary objective with unmodified bounds (step 0).
//  3. Anchor: optimise the enforced reaction (see AnchorMode).
//  4. Schedule: NumSteps+1 points from the baseline enforced flux to the anchor.
//  5. Steps 1..NumSteps: tighten the enforced bound, re-solve, record, restore.
//  6. Classify trends; optionally augment with variability ranges and ranks.
//
// Every bound and objective change is scoped; the model is bit-identical to
// its pre-call state on every exit path, panics included.

package fseof

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/flux"
)

// anchorSlack relaxes the objective floor of the constrained anchor relative
// to |optimum| so the baseline optimum stays feasible under solver round-off.
const anchorSlack = 1e-9

// Engine runs scans with a fixed Config. It is safe for concurrent use on
// distinct models; a second concurrent Run on the same model fails with
// core.ErrModelBusy.
type Engine struct {
	cfg Config
}

// New returns an Engine for cfg. Validation happens in Run, against the model.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Run is shorthand for New(cfg).Run(ctx, m).
func Run(ctx context.Context, m *core.Model, cfg Config) (*Result, error) {
	return New(cfg).Run(ctx, m)
}

// run carries the state of one Run call.
type run struct {
	cfg          Config
	m            *core.Model
	tracked      []string
	enfLo, enfHi float64
	log          *slog.Logger
}

// Run scans m.
//
// Errors (fatal):
//   - ErrInvalidConfig (wrapped with the field), core.ErrModelBusy.
//   - *InfeasibleModelError, *ScheduleDegenerateError, *SweepInfeasibleError.
//   - ctx.Err() when cancelled between steps.
//
// Recovered failures are reported by Result.StepErrors, Result.VariabilityErrors
// and Result.Missing.
//
// Complexity: (NumSteps + 2) solves, plus (NumSteps + 1) variability runs when enabled.
func (e *Engine) Run(ctx context.Context, m *core.Model) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: model is nil", ErrInvalidConfig)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := e.cfg
	tracked, err := cfg.normalize(m)
	if err != nil {
		return nil, err
	}

	release, err := m.Acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	snap := m.SnapshotBounds()
	defer m.RestoreBounds(snap)

	enfLo, enfHi, err := m.Bounds(cfg.Enforced)
	if err != nil {
		return nil, err
	}
	r := &run{
		cfg:     cfg,
		m:       m,
		tracked: tracked,
		enfLo:   enfLo,
		enfHi:   enfHi,
		log:     cfg.Logger.With("model", m.Name(), "enforced", cfg.Enforced, "objective", cfg.Objective),
	}

	var res *Result
	err = m.WithObjective(cfg.Objective, core.Maximize, func() error {
		var err error
		res, err = r.execute(ctx)
		return err
	})
	if err != nil {
		r.log.Error("fseof: scan aborted", "err", err)
		return nil, err
	}

	return res, nil
}

func (r *run) execute(ctx context.Context) (*Result, error) {
	cfg := r.cfg
	total := cfg.NumSteps + 1

	// Stage 2: baseline.
	base, err := r.solve()
	if err != nil {
		return nil, &InfeasibleModelError{Reaction: cfg.Objective, Stage: "baseline", Err: err}
	}
	v0, ok := base.Fluxes[cfg.Enforced]
	if !ok {
		return nil, &InfeasibleModelError{Reaction: cfg.Objective, Stage: "baseline",
			Err: fmt.Errorf("solution lacks enforced reaction %q", cfg.Enforced)}
	}
	z0 := r.objectiveFlux(base)
	r.log.Info("fseof: baseline", "objective_flux", z0, "enforced_flux", v0)

	// Stage 3: anchor.
	anchor, err := r.anchor(z0)
	if err != nil {
		return nil, err
	}
	r.log.Info("fseof: anchor", "mode", cfg.Anchor.String(), "anchor", anchor)

	// Stage 4: schedule.
	sched, err := BuildSchedule(v0, anchor, cfg.NumSteps, cfg.Direction, cfg.Tolerance)
	if err != nil {
		return nil, err
	}

	table := NewFluxTable(r.tracked, total)
	if err = table.SetRow(0, base.Fluxes); err != nil {
		return nil, err
	}
	steps := make([]StepInfo, 0, total)
	steps = append(steps, StepInfo{Step: 0, Value: v0, EnforcedFlux: v0, ObjectiveFlux: z0, Feasible: true})
	feasible := make([]bool, total)
	feasible[0] = true
	r.progress(0, total)

	// Stage 5: enforced steps.
	var stepErrs []StepInfeasible
	for i := 1; i < total; i++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		v := sched.Points[i]
		lo, hi := r.stepBounds(v)

		var sol flux.Solution
		err = r.m.WithBounds(cfg.Enforced, lo, hi, func() error {
			var err error
			sol, err = r.solve()
			return err
		})

		info := StepInfo{Step: i, Value: v, EnforcedFlux: math.NaN(), ObjectiveFlux: math.NaN()}
		if err != nil {
			stepErrs = append(stepErrs, StepInfeasible{Step: i, Value: v, Err: err})
			r.log.Warn("fseof: step infeasible", "step", i, "value", v, "err", err)
		} else {
			if err = table.SetRow(i, sol.Fluxes); err != nil {
				return nil, err
			}
			feasible[i] = true
			info.Feasible = true
			info.EnforcedFlux = sol.Flux(cfg.Enforced)
			info.ObjectiveFlux = r.objectiveFlux(sol)
			r.log.Debug("fseof: step", "step", i, "value", v, "objective_flux", info.ObjectiveFlux)
		}
		steps = append(steps, info)
		r.progress(i, total)
	}

	if frac := float64(len(stepErrs)) / float64(cfg.NumSteps); frac > cfg.MaxInfeasibleFrac {
		return nil, &SweepInfeasibleError{Infeasible: len(stepErrs), Total: cfg.NumSteps, Threshold: cfg.MaxInfeasibleFrac}
	}

	// Stage 6: classification and optional variability.
	classes := Classify(table, cfg.Direction, cfg.Classifier)
	res := &Result{
		enforced:   cfg.Enforced,
		objective:  cfg.Objective,
		direction:  cfg.Direction,
		schedule:   sched,
		steps:      steps,
		scan:       table,
		classes:    classes,
		stepErrors: stepErrs,
	}

	if cfg.ComputeVariability {
		ids := r.tracked
		if cfg.VariabilityScope == ScopeTargets {
			ids = targetsOf(classes)
		}
		ranges, cellErrs, err := r.augment(ctx, sched, feasible, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range ranges.Reactions() {
			_, series := ranges.Series(id)
			c := classes[id]
			c.Rank = Rank(series, cfg.Direction, cfg.Classifier.Tolerance, cfg.RankWidthTolerance)
			classes[id] = c
		}
		res.variability = ranges
		res.cellErrors = cellErrs
	}

	r.log.Info("fseof: scan complete",
		"steps", total, "infeasible", len(stepErrs), "targets", len(targetsOf(classes)))

	return res, nil
}

// solve calls the configured Solver and turns non-optimal statuses into errors.
func (r *run) solve() (flux.Solution, error) {
	sol, err := r.cfg.Solver.Optimize(r.m)
	if err != nil {
		return sol, err
	}
	switch sol.Status {
	case flux.Optimal:
		return sol, nil
	case flux.Infeasible:
		return sol, flux.ErrInfeasible
	case flux.Unbounded:
		return sol, flux.ErrUnbounded
	default:
		return sol, flux.ErrSolverFailed
	}
}

// objectiveFlux prefers the recorded flux of the objective reaction and
// falls back to the reported objective value.
func (r *run) objectiveFlux(sol flux.Solution) float64 {
	if v, ok := sol.Fluxes[r.cfg.Objective]; ok {
		return v
	}

	return sol.ObjectiveValue
}

// anchor computes the far end of the schedule.
func (r *run) anchor(z0 float64) (float64, error) {
	cfg := r.cfg
	var sol flux.Solution
	optimizeEnforced := func() error {
		return r.m.WithObjective(cfg.Enforced, cfg.Direction.Sense(), func() error {
			var err error
			sol, err = r.solve()
			return err
		})
	}

	var err error
	if cfg.Anchor == AnchorScaled {
		err = optimizeEnforced()
	} else {
		olo, ohi, berr := r.m.Bounds(cfg.Objective)
		if berr != nil {
			return 0, berr
		}
		floor := z0 - (1-cfg.EnforcedFracOpt)*math.Abs(z0) - anchorSlack*math.Max(1, math.Abs(z0))
		floor = math.Min(math.Max(floor, olo), ohi)
		err = r.m.WithBounds(cfg.Objective, floor, ohi, optimizeEnforced)
	}
	if err != nil {
		return 0, &InfeasibleModelError{Reaction: cfg.Enforced, Stage: "anchor", Err: err}
	}

	a, ok := sol.Fluxes[cfg.Enforced]
	if !ok {
		a = sol.ObjectiveValue
	}
	if cfg.Anchor == AnchorScaled {
		a *= cfg.EnforcedFracOpt
	}

	return clamp(a, r.enfLo, r.enfHi), nil
}

// stepBounds returns the enforced bounds for schedule value v.
func (r *run) stepBounds(v float64) (lo, hi float64) {
	v = clamp(v, r.enfLo, r.enfHi)
	switch {
	case r.cfg.PinBounds:
		return v, v
	case r.cfg.Direction == Min:
		return r.enfLo, v
	default:
		return v, r.enfHi
	}
}

func (r *run) progress(step, total int) {
	if r.cfg.Progress != nil {
		r.cfg.Progress(step, total)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
