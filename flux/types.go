package flux

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/fseof/core"
)

var (
	// ErrInfeasible is returned when no flux distribution satisfies S·v = 0 and the bounds.
	ErrInfeasible = errors.New("flux: problem is infeasible")

	// ErrUnbounded is returned when the objective can be improved without limit.
	ErrUnbounded = errors.New("flux: problem is unbounded")

	// ErrNoObjective is returned when the model has no objective reaction.
	ErrNoObjective = errors.New("flux: model has no objective")

	// ErrReactionNotFound is returned for an unknown reaction ID.
	ErrReactionNotFound = errors.New("flux: reaction not found")

	// ErrSolverFailed wraps numeric failures of the underlying simplex.
	ErrSolverFailed = errors.New("flux: solver failed")

	// ErrNilModel is returned when a nil *core.Model is passed.
	ErrNilModel = errors.New("flux: model is nil")

	// ErrInvalidFraction is returned when FractionOfOptimum is outside (0, 1].
	ErrInvalidFraction = errors.New("flux: fraction of optimum must be in (0, 1]")
)

// Sense re-exports core.Sense so callers of flux need not import core for it.
type Sense = core.Sense

// Optimisation directions.
const (
	Maximize = core.Maximize
	Minimize = core.Minimize
)

// Status is the outcome of a single optimisation.
type Status int

const (
	// Optimal means an optimal flux distribution was found.
	Optimal Status = iota
	// Infeasible means the constraints admit no solution.
	Infeasible
	// Unbounded means the objective is unbounded in its sense.
	Unbounded
	// Failed means the solver gave up for numeric reasons.
	Failed
)

// String returns a lowercase status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "failed"
	}
}

// Solution is the result of an objective solve.
// Fluxes holds every reaction of the model when Status == Optimal, and is nil otherwise.
type Solution struct {
	Status         Status
	ObjectiveValue float64
	Fluxes         map[string]float64
}

// Flux returns the flux of reaction id, or NaN if the solution lacks it.
func (s Solution) Flux(id string) float64 {
	v, ok := s.Fluxes[id]
	if !ok {
		return math.NaN()
	}

	return v
}

// Range is a feasible flux interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Width returns Max − Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// String formats the range as "[min, max]".
func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r.Min, r.Max) }

// Solver is the objective-solve capability consumed by scans: it optimises
// the model's current objective under the model's current bounds.
type Solver interface {
	Optimize(m *core.Model) (Solution, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(m *core.Model) (Solution, error)

// Optimize calls f(m).
func (f SolverFunc) Optimize(m *core.Model) (Solution, error) { return f(m) }

// Default numeric settings.
const (
	// DefaultTolerance is the simplex optimality tolerance.
	DefaultTolerance = 1e-9

	// DefaultFractionOfOptimum keeps the objective at its optimum during variability analysis.
	DefaultFractionOfOptimum = 1.0
)

// Options configures Optimize and Variability.
//   - Ctx: checked between the solves of Variability; nil means Background.
//   - Tolerance: simplex optimality tolerance.
//   - FractionOfOptimum: Variability holds the objective at this fraction of its optimum (0 means 1).
//   - Logger: optional structured logger; nil disables logging.
type Options struct {
	Ctx               context.Context
	Tolerance         float64
	FractionOfOptimum float64
	Logger            *slog.Logger
}

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:         DefaultTolerance,
		FractionOfOptimum: DefaultFractionOfOptimum,
	}
}

// normalize fills zero values with defaults and validates the fraction.
func (o *Options) normalize() error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		o.Tolerance = DefaultTolerance
	}
	if o.FractionOfOptimum == 0 {
		o.FractionOfOptimum = DefaultFractionOfOptimum
	}
	if math.IsNaN(o.FractionOfOptimum) || o.FractionOfOptimum < 0 || o.FractionOfOptimum > 1 {
		return ErrInvalidFraction
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return nil
}
