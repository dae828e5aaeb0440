package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/fseof/fseof"
)

// SaveRun stores res under a fresh UUIDv7 and returns its summary row.
// model names the model the scan ran on. Everything is written in a single
// transaction: either the whole run is stored or nothing is.
func (s *Store) SaveRun(ctx context.Context, model string, res *fseof.Result) (Run, error) {
	if res == nil {
		return Run{}, fmt.Errorf("save run: %w", ErrNilResult)
	}

	sched := res.Schedule()
	missing := res.Missing()
	classes := res.Classifications()
	run := Run{
		ID:              uuid.Must(uuid.NewV7()).String(),
		CreatedAt:       s.now().UTC(),
		Model:           model,
		Enforced:        res.Enforced(),
		Objective:       res.Objective(),
		Direction:       res.Direction().String(),
		NumSteps:        sched.Len() - 1,
		Baseline:        sched.Baseline,
		Anchor:          sched.Anchor,
		InfeasibleSteps: missing.Steps,
		FailedCells:     missing.VariabilityCells,
		Variability:     res.Variability() != nil,
		Targets:         len(res.Targets()),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("save run: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, model, enforced, objective, direction, num_steps,
		 baseline, anchor, infeasible_steps, failed_cells, variability)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.CreatedAt.Format(timeLayout),
		run.Model,
		run.Enforced,
		run.Objective,
		run.Direction,
		run.NumSteps,
		run.Baseline,
		run.Anchor,
		run.InfeasibleSteps,
		run.FailedCells,
		boolInt(run.Variability),
	); err != nil {
		return Run{}, fmt.Errorf("save run: insert run: %w", err)
	}

	if err := insertSteps(ctx, tx, run.ID, res.Steps()); err != nil {
		return Run{}, err
	}
	if err := insertClassifications(ctx, tx, run.ID, classes); err != nil {
		return Run{}, err
	}
	if err := insertFluxes(ctx, tx, run.ID, res.Scan()); err != nil {
		return Run{}, err
	}
	if vt := res.Variability(); vt != nil {
		if err := insertRanges(ctx, tx, run.ID, vt); err != nil {
			return Run{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("save run: commit: %w", err)
	}

	return run, nil
}

func insertSteps(ctx context.Context, tx *sql.Tx, runID string, steps []fseof.StepInfo) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO steps (run_id, step, value, enforced_flux, objective_flux, feasible)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save run: prepare steps: %w", err)
	}
	defer stmt.Close()

	for _, st := range steps {
		if _, err := stmt.ExecContext(ctx,
			runID, st.Step, st.Value, nullFloat(st.EnforcedFlux), nullFloat(st.ObjectiveFlux), boolInt(st.Feasible),
		); err != nil {
			return fmt.Errorf("save run: step %d: %w", st.Step, err)
		}
	}

	return nil
}

func insertClassifications(ctx context.Context, tx *sql.Tx, runID string, classes map[string]fseof.Classification) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO classifications
		(run_id, reaction, target, rank, monotonic, scored, min_flux, max_flux, net_change)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save run: prepare classifications: %w", err)
	}
	defer stmt.Close()

	for id, c := range classes {
		if _, err := stmt.ExecContext(ctx,
			runID, id, boolInt(c.Target), c.Rank, c.Monotonic, c.Scored,
			finite(c.Min), finite(c.Max), finite(c.NetChange),
		); err != nil {
			return fmt.Errorf("save run: classification %q: %w", id, err)
		}
	}

	return nil
}

func insertFluxes(ctx context.Context, tx *sql.Tx, runID string, t *fseof.FluxTable) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fluxes (run_id, step, reaction, flux) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save run: prepare fluxes: %w", err)
	}
	defer stmt.Close()

	for _, id := range t.Reactions() {
		steps, values := t.Series(id)
		for i, step := range steps {
			if _, err := stmt.ExecContext(ctx, runID, step, id, values[i]); err != nil {
				return fmt.Errorf("save run: flux %q at step %d: %w", id, step, err)
			}
		}
	}

	return nil
}

func insertRanges(ctx context.Context, tx *sql.Tx, runID string, t *fseof.RangeTable) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ranges (run_id, step, reaction, min_flux, max_flux) VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save run: prepare ranges: %w", err)
	}
	defer stmt.Close()

	for _, id := range t.Reactions() {
		steps, ranges := t.Series(id)
		for i, step := range steps {
			if _, err := stmt.ExecContext(ctx, runID, step, id, ranges[i].Min, ranges[i].Max); err != nil {
				return fmt.Errorf("save run: range %q at step %d: %w", id, step, err)
			}
		}
	}

	return nil
}

// DeleteRun removes a run and, through foreign keys, all of its rows.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete run %q: %w", id, ErrRunNotFound)
	}

	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// nullFloat maps NaN to NULL.
func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

// finite maps NaN and ±Inf to 0; classification columns are NOT NULL.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
