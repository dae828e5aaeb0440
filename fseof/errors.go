package fseof

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below matches its sentinel with errors.Is.
var (
	// ErrInvalidConfig is returned, wrapped with the offending field, when a Config is unusable.
	ErrInvalidConfig = errors.New("fseof: invalid config")

	// ErrInfeasibleModel marks a failed baseline (or anchor) solve. Fatal.
	ErrInfeasibleModel = errors.New("fseof: model infeasible")

	// ErrScheduleDegenerate marks an enforcement schedule that cannot move
	// beyond the baseline. Fatal.
	ErrScheduleDegenerate = errors.New("fseof: degenerate enforcement schedule")

	// ErrSweepInfeasible marks a sweep with too many infeasible steps. Fatal.
	ErrSweepInfeasible = errors.New("fseof: too many infeasible sweep steps")

	// ErrStepInfeasible marks one infeasible enforced step. Recovered.
	ErrStepInfeasible = errors.New("fseof: sweep step infeasible")

	// ErrVariabilityStepFailed marks one failed variability cell. Recovered.
	ErrVariabilityStepFailed = errors.New("fseof: variability step failed")
)

// unwrapAll returns the non-nil errors among errs.
func unwrapAll(errs ...error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}

	return out
}

// InfeasibleModelError reports that the model could not be solved at a fatal
// stage: "baseline" (primary objective, unmodified bounds) or "anchor"
// (optimisation of the enforced reaction).
type InfeasibleModelError struct {
	Reaction string
	Stage    string
	Err      error
}

func (e *InfeasibleModelError) Error() string {
	return fmt.Sprintf("fseof: %s solve of %q failed: %v", e.Stage, e.Reaction, e.Err)
}

// Unwrap exposes ErrInfeasibleModel and the solver error.
func (e *InfeasibleModelError) Unwrap() []error { return unwrapAll(ErrInfeasibleModel, e.Err) }

// ScheduleDegenerateError reports that the schedule from Baseline to Anchor
// is not strictly monotonic in the enforcement direction. Step and Value
// locate the first offending point (Step == NumSteps for an anchor that does
// not move beyond the baseline).
type ScheduleDegenerateError struct {
	Baseline float64
	Anchor   float64
	Step     int
	Value    float64
}

func (e *ScheduleDegenerateError) Error() string {
	return fmt.Sprintf("fseof: degenerate schedule from %g to %g: step %d value %g",
		e.Baseline, e.Anchor, e.Step, e.Value)
}

// Unwrap exposes ErrScheduleDegenerate.
func (e *ScheduleDegenerateError) Unwrap() error { return ErrScheduleDegenerate }

// SweepInfeasibleError reports that Infeasible of Total enforced steps failed,
// exceeding Threshold (a fraction).
type SweepInfeasibleError struct {
	Infeasible int
	Total      int
	Threshold  float64
}

func (e *SweepInfeasibleError) Error() string {
	return fmt.Sprintf("fseof: %d of %d steps infeasible (threshold %g)", e.Infeasible, e.Total, e.Threshold)
}

// Unwrap exposes ErrSweepInfeasible.
func (e *SweepInfeasibleError) Unwrap() error { return ErrSweepInfeasible }

// StepInfeasible records a recovered failure of enforced step Step at
// enforced value Value.
type StepInfeasible struct {
	Step  int
	Value float64
	Err   error
}

func (e StepInfeasible) Error() string {
	return fmt.Sprintf("fseof: step %d (enforced %g) infeasible: %v", e.Step, e.Value, e.Err)
}

// Unwrap exposes ErrStepInfeasible and the solver error.
func (e StepInfeasible) Unwrap() []error { return unwrapAll(ErrStepInfeasible, e.Err) }

// VariabilityStepFailed records a recovered failure of the variability
// computation for Reaction at step Step.
type VariabilityStepFailed struct {
	Step     int
	Reaction string
	Err      error
}

func (e VariabilityStepFailed) Error() string {
	return fmt.Sprintf("fseof: variability of %q at step %d failed: %v", e.Reaction, e.Step, e.Err)
}

// Unwrap exposes ErrVariabilityStepFailed and the solver error.
func (e VariabilityStepFailed) Unwrap() []error { return unwrapAll(ErrVariabilityStepFailed, e.Err) }
