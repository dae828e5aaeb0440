// File: variability.go
// Role: Flux variability augmentation of a sweep and the variability rank.

package fseof

import (
	"context"
	"math"

	"github.com/katalvlaran/fseof/flux"
)

// Rank scores the variability ranges of one reaction across steps, in the
// enforcement direction d (for Min the ranges are mirrored first):
//
//	+1  the minima never decrease (ties within tieTol);
//	+1  and the ranges separate: the smallest maximum lies below the largest minimum;
//	+1  and every range is narrower than widthTol.
//
// The second and third points only count when the previous one holds.
// Fewer than two ranges score 0.
func Rank(ranges []flux.Range, d Direction, tieTol, widthTol float64) int {
	if len(ranges) < 2 {
		return 0
	}
	mins := make([]float64, len(ranges))
	maxs := make([]float64, len(ranges))
	for i, r := range ranges {
		if d == Min {
			mins[i], maxs[i] = -r.Max, -r.Min
		} else {
			mins[i], maxs[i] = r.Min, r.Max
		}
	}

	for i := 1; i < len(mins); i++ {
		if mins[i] < mins[i-1]-tieTol {
			return 0
		}
	}
	rank := 1

	lowestMax, highestMin := math.Inf(1), math.Inf(-1)
	for i := range mins {
		lowestMax = math.Min(lowestMax, maxs[i])
		highestMin = math.Max(highestMin, mins[i])
	}
	if !(lowestMax < highestMin) {
		return rank
	}
	rank++

	for i := range mins {
		if maxs[i]-mins[i] >= widthTol {
			return rank
		}
	}

	return rank + 1
}

// augment computes variability ranges for ids at every feasible step under
// the same scoped bounds the sweep used. Per-cell and per-step failures are
// recorded, never fatal; only cancellation aborts.
func (r *run) augment(ctx context.Context, sched Schedule, feasible []bool, ids []string) (*RangeTable, []VariabilityStepFailed, error) {
	total := sched.Len()
	table := NewRangeTable(ids, total)
	var failures []VariabilityStepFailed
	if len(ids) == 0 {
		return table, nil, nil
	}

	for step := 0; step < total; step++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if !feasible[step] {
			r.progressVariability(step, total)
			continue
		}

		compute := func() error {
			res, err := r.cfg.Variability(r.m, ids)
			if err != nil {
				for _, id := range ids {
					failures = append(failures, VariabilityStepFailed{Step: step, Reaction: id, Err: err})
				}

				return nil
			}
			for _, id := range ids {
				rng, ok := res.Ranges[id]
				if !ok {
					failures = append(failures, VariabilityStepFailed{Step: step, Reaction: id, Err: res.Failed[id]})
					continue
				}
				if err := table.Set(step, id, rng); err != nil {
					return err
				}
			}

			return nil
		}

		var err error
		if step == 0 {
			err = compute()
		} else {
			lo, hi := r.stepBounds(sched.Points[step])
			err = r.m.WithBounds(r.cfg.Enforced, lo, hi, compute)
		}
		if err != nil {
			return nil, nil, err
		}
		r.log.Debug("fseof: variability step", "step", step, "reactions", len(ids))
		r.progressVariability(step, total)
	}

	for _, f := range failures {
		r.log.Warn("fseof: variability cell missing", "step", f.Step, "reaction", f.Reaction, "err", f.Err)
	}

	return table, failures, nil
}

func (r *run) progressVariability(step, total int) {
	if r.cfg.VariabilityProgress != nil {
		r.cfg.VariabilityProgress(step, total)
	}
}
