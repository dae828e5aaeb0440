package fseof

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Schedule is the ordered list of enforced flux values.
// Points[0] is the baseline flux of the enforced reaction and
// Points[len-1] the anchor; both are exact.
type Schedule struct {
	Baseline float64
	Anchor   float64
	Points   []float64
}

// Len returns the number of points (NumSteps+1).
func (s Schedule) Len() int { return len(s.Points) }

// BuildSchedule interpolates numSteps+1 points linearly from baseline to
// anchor, both inclusive.
//
// Errors:
//   - *ScheduleDegenerateError when the anchor is not beyond the baseline by
//     more than tol in direction d, or when rounding produces a point that
//     does not strictly advance.
//
// Complexity: O(numSteps).
func BuildSchedule(baseline, anchor float64, numSteps int, d Direction, tol float64) (Schedule, error) {
	if numSteps <= 0 {
		return Schedule{}, invalid("NumSteps", "must be > 0, got %d", numSteps)
	}
	if math.IsNaN(baseline) || math.IsNaN(anchor) || d.sign()*(anchor-baseline) <= tol {
		return Schedule{}, &ScheduleDegenerateError{Baseline: baseline, Anchor: anchor, Step: numSteps, Value: anchor}
	}

	points := floats.Span(make([]float64, numSteps+1), baseline, anchor)
	for i := 1; i < len(points); i++ {
		if d.sign()*(points[i]-points[i-1]) <= 0 {
			return Schedule{}, &ScheduleDegenerateError{Baseline: baseline, Anchor: anchor, Step: i, Value: points[i]}
		}
	}

	return Schedule{Baseline: baseline, Anchor: anchor, Points: points}, nil
}
