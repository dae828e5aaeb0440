// File: classify.go
// Role: Trend classifier. A pure function of a FluxTable and a Direction.

package fseof

import (
	"math"
)

// ClassifierMode selects the target decision rule.
type ClassifierMode int

const (
	// ModeValue flags reactions whose flux is monotonic in the enforcement
	// direction (ties within Tolerance allowed) with a net change beyond
	// MinNetChange between the first and last available steps.
	ModeValue ClassifierMode = iota

	// ModeMagnitude flags reactions that never change sign and whose largest
	// magnitude exceeds the step-0 magnitude by more than MinNetChange,
	// independent of the enforcement direction.
	ModeMagnitude
)

// String returns "value" or "magnitude".
func (m ClassifierMode) String() string {
	if m == ModeMagnitude {
		return "magnitude"
	}

	return "value"
}

// ClassifierOptions tunes Classify.
//   - Tolerance: tie tolerance between consecutive steps and zero threshold.
//   - MinNetChange: minimal net change for a target.
//   - Mode: decision rule.
type ClassifierOptions struct {
	Tolerance    float64
	MinNetChange float64
	Mode         ClassifierMode
}

// DefaultClassifierOptions returns Tolerance = MinNetChange = 1e-6, ModeValue.
func DefaultClassifierOptions() ClassifierOptions {
	return ClassifierOptions{Tolerance: DefaultTolerance, MinNetChange: DefaultTolerance, Mode: ModeValue}
}

func (o ClassifierOptions) withDefaults() ClassifierOptions {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		o.Tolerance = DefaultTolerance
	}
	if o.MinNetChange <= 0 || math.IsNaN(o.MinNetChange) {
		o.MinNetChange = DefaultTolerance
	}

	return o
}

// Classification is the per-reaction verdict.
//   - Target: the reaction is an over-expression candidate.
//   - Monotonic / Scored: transitions between consecutive available steps
//     that respect the trend, out of all scored transitions.
//   - Min, Max: extreme fluxes over the available steps.
//   - NetChange: last available flux minus first available flux.
//   - Rank: variability rank 0..3 (0 when variability was not computed).
type Classification struct {
	Target    bool
	Monotonic int
	Scored    int
	Min       float64
	Max       float64
	NetChange float64
	Rank      int
}

// Consistency returns Monotonic/Scored, or 0 when nothing was scored.
func (c Classification) Consistency() float64 {
	if c.Scored == 0 {
		return 0
	}

	return float64(c.Monotonic) / float64(c.Scored)
}

// Classify decides, for every reaction of t, whether its trend marks it as a
// target. Missing steps are skipped, never read as zero. Reactions with fewer
// than two available steps, or whose flux is zero (within Tolerance) at every
// available step, are never targets.
//
// Complexity: O(steps × reactions).
func Classify(t *FluxTable, d Direction, opts ClassifierOptions) map[string]Classification {
	opts = opts.withDefaults()
	out := make(map[string]Classification, len(t.reactions))
	for _, id := range t.reactions {
		_, values := t.Series(id)
		out[id] = classifySeries(values, d, opts)
	}

	return out
}

func classifySeries(values []float64, d Direction, opts ClassifierOptions) Classification {
	var c Classification
	if len(values) == 0 {
		return c
	}
	c.Min, c.Max = values[0], values[0]
	allZero := math.Abs(values[0]) <= opts.Tolerance
	for _, v := range values[1:] {
		c.Min, c.Max = math.Min(c.Min, v), math.Max(c.Max, v)
		allZero = allZero && math.Abs(v) <= opts.Tolerance
	}
	first, last := values[0], values[len(values)-1]
	c.NetChange = last - first
	if len(values) < 2 {
		return c
	}

	switch opts.Mode {
	case ModeMagnitude:
		for k := 1; k < len(values); k++ {
			c.Scored++
			if math.Abs(values[k])-math.Abs(values[k-1]) >= -opts.Tolerance {
				c.Monotonic++
			}
		}
		peak := math.Max(math.Abs(c.Min), math.Abs(c.Max))
		sameSign := c.Min >= -opts.Tolerance || c.Max <= opts.Tolerance
		c.Target = !allZero && sameSign && peak-math.Abs(first) > opts.MinNetChange
	default:
		s := d.sign()
		for k := 1; k < len(values); k++ {
			c.Scored++
			if s*(values[k]-values[k-1]) >= -opts.Tolerance {
				c.Monotonic++
			}
		}
		c.Target = !allZero && c.Monotonic == c.Scored && s*c.NetChange > opts.MinNetChange
	}

	return c
}
