package fseof

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/flux"
)

// Direction is the enforcement direction of the enforced reaction.
type Direction int

const (
	// Max drives the enforced flux up by raising its lower bound.
	Max Direction = iota
	// Min drives the enforced flux down by lowering its upper bound.
	Min
)

// String returns "max" or "min".
func (d Direction) String() string {
	if d == Min {
		return "min"
	}

	return "max"
}

// Sense returns the optimisation sense that moves the enforced flux in d.
func (d Direction) Sense() core.Sense {
	if d == Min {
		return core.Minimize
	}

	return core.Maximize
}

// sign is +1 for Max and −1 for Min, so sign·Δ > 0 means "moved in d".
func (d Direction) sign() float64 {
	if d == Min {
		return -1
	}

	return 1
}

// ParseDirection parses "max" or "min" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return Max, fmt.Errorf("%w: direction %q", ErrInvalidConfig, s)
	}
}

// AnchorMode selects how the far end of the enforcement schedule is computed.
type AnchorMode int

const (
	// AnchorConstrained optimises the enforced reaction in the enforcement
	// direction while the primary objective stays ≥ EnforcedFracOpt × its
	// baseline optimum.
	AnchorConstrained AnchorMode = iota
	// AnchorScaled takes EnforcedFracOpt × the free optimum of the enforced
	// reaction (primary objective unconstrained).
	AnchorScaled
)

// String returns "constrained" or "scaled".
func (a AnchorMode) String() string {
	if a == AnchorScaled {
		return "scaled"
	}

	return "constrained"
}

// VariabilityScope selects the reactions covered by variability augmentation.
type VariabilityScope int

const (
	// ScopeTargets limits variability to classified targets.
	ScopeTargets VariabilityScope = iota
	// ScopeAll covers every tracked reaction.
	ScopeAll
)

// Defaults.
const (
	DefaultEnforcedFracOpt    = 0.9
	DefaultMaxInfeasibleFrac  = 0.5
	DefaultTolerance          = 1e-6
	DefaultRankWidthTolerance = 1e-3
)

// Config configures one scan.
//
//   - NumSteps: number of enforced steps (> 0); the table has NumSteps+1 rows.
//   - Enforced, Objective: reaction IDs; must differ and exist.
//   - Direction: Max (default) or Min.
//   - EnforcedFracOpt: fraction in (0,1]; 0 means DefaultEnforcedFracOpt.
//   - Reactions: tracked reactions; empty means every non-boundary reaction
//     except Enforced and Objective.
//   - Solver: objective-solve capability; nil means flux.DefaultSolver().
//   - ComputeVariability, VariabilityScope, Variability: opt-in range
//     augmentation; a nil Variability uses flux.Variability.
//   - Progress: called once per completed sweep step (step, NumSteps+1).
//   - VariabilityProgress: likewise for variability steps.
//   - Anchor: AnchorConstrained (default) or AnchorScaled.
//   - PinBounds: fix both enforced bounds to the step value.
//   - MaxInfeasibleFrac: abort when more than this fraction of enforced steps
//     is infeasible; 0 means DefaultMaxInfeasibleFrac, negative means "none allowed".
//   - Tolerance: minimal anchor distance from the baseline; 0 means DefaultTolerance.
//   - Classifier: trend classifier options (zero fields take defaults).
//   - RankWidthTolerance: variability rank width cut-off; 0 means default.
//   - Logger: structured logger; nil disables logging.
type Config struct {
	NumSteps            int
	Enforced            string
	Objective           string
	Direction           Direction
	EnforcedFracOpt     float64
	Reactions           []string
	Solver              flux.Solver
	ComputeVariability  bool
	VariabilityScope    VariabilityScope
	Variability         flux.VariabilityFunc
	Progress            func(step, total int)
	VariabilityProgress func(step, total int)
	Anchor              AnchorMode
	PinBounds           bool
	MaxInfeasibleFrac   float64
	Tolerance           float64
	Classifier          ClassifierOptions
	RankWidthTolerance  float64
	Logger              *slog.Logger
}

// DefaultConfig returns a Config with every default filled in; callers set
// NumSteps, Enforced and Objective.
func DefaultConfig() Config {
	return Config{
		NumSteps:           10,
		Direction:          Max,
		EnforcedFracOpt:    DefaultEnforcedFracOpt,
		MaxInfeasibleFrac:  DefaultMaxInfeasibleFrac,
		Tolerance:          DefaultTolerance,
		Classifier:         DefaultClassifierOptions(),
		RankWidthTolerance: DefaultRankWidthTolerance,
	}
}

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// normalize fills defaults and validates c against m. It returns the
// resolved list of tracked reactions (sorted, de-duplicated).
func (c *Config) normalize(m *core.Model) ([]string, error) {
	if c.NumSteps <= 0 {
		return nil, invalid("NumSteps", "must be > 0, got %d", c.NumSteps)
	}
	if c.Direction != Max && c.Direction != Min {
		return nil, invalid("Direction", "unknown value %d", c.Direction)
	}
	if c.EnforcedFracOpt == 0 {
		c.EnforcedFracOpt = DefaultEnforcedFracOpt
	}
	if math.IsNaN(c.EnforcedFracOpt) || c.EnforcedFracOpt <= 0 || c.EnforcedFracOpt > 1 {
		return nil, invalid("EnforcedFracOpt", "must be in (0, 1], got %g", c.EnforcedFracOpt)
	}
	if c.MaxInfeasibleFrac == 0 {
		c.MaxInfeasibleFrac = DefaultMaxInfeasibleFrac
	}
	if c.MaxInfeasibleFrac < 0 {
		c.MaxInfeasibleFrac = 0
	}
	if math.IsNaN(c.MaxInfeasibleFrac) || c.MaxInfeasibleFrac > 1 {
		return nil, invalid("MaxInfeasibleFrac", "must be in [0, 1], got %g", c.MaxInfeasibleFrac)
	}
	if c.Tolerance <= 0 || math.IsNaN(c.Tolerance) {
		c.Tolerance = DefaultTolerance
	}
	if c.RankWidthTolerance <= 0 || math.IsNaN(c.RankWidthTolerance) {
		c.RankWidthTolerance = DefaultRankWidthTolerance
	}
	c.Classifier = c.Classifier.withDefaults()
	if c.Solver == nil {
		c.Solver = flux.DefaultSolver()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Variability == nil {
		c.Variability = flux.DefaultVariability(flux.DefaultOptions())
	}

	c.Enforced, c.Objective = core.NormalizeID(c.Enforced), core.NormalizeID(c.Objective)
	for _, f := range []struct{ field, id string }{{"Enforced", c.Enforced}, {"Objective", c.Objective}} {
		if f.id == "" {
			return nil, invalid(f.field, "reaction ID is empty")
		}
		if !m.HasReaction(f.id) {
			return nil, fmt.Errorf("%w: %s: %q: %w", ErrInvalidConfig, f.field, f.id, core.ErrReactionNotFound)
		}
	}
	if c.Enforced == c.Objective {
		return nil, invalid("Enforced", "must differ from Objective (%q)", c.Objective)
	}

	return c.trackedReactions(m)
}

// trackedReactions resolves Config.Reactions against m.
func (c *Config) trackedReactions(m *core.Model) ([]string, error) {
	if len(c.Reactions) == 0 {
		ids := make([]string, 0)
		for _, id := range m.ReactionIDs() {
			if id == c.Enforced || id == c.Objective || m.IsBoundary(id) {
				continue
			}
			ids = append(ids, id)
		}

		return ids, nil
	}

	seen := make(map[string]struct{}, len(c.Reactions))
	ids := make([]string, 0, len(c.Reactions))
	for _, id := range c.Reactions {
		id = core.NormalizeID(id)
		if !m.HasReaction(id) {
			return nil, fmt.Errorf("%w: Reactions: %q: %w", ErrInvalidConfig, id, core.ErrReactionNotFound)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}
