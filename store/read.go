package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"
)

const runColumns = `
	r.id, r.created_at, r.model, r.enforced, r.objective, r.direction, r.num_steps,
	r.baseline, r.anchor, r.infeasible_steps, r.failed_cells, r.variability,
	(SELECT COUNT(*) FROM classifications c WHERE c.run_id = r.id AND c.target = 1)`

// ListRuns returns every run, newest first.
//
// Returns an empty slice (not nil) for an empty store.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs r
		ORDER BY r.created_at DESC, r.id COLLATE BINARY DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Run returns the summary row of run id.
// Errors: ErrRunNotFound.
func (s *Store) Run(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+runColumns+`
		FROM runs r
		WHERE r.id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %q: %w", id, ErrRunNotFound)
	}

	return run, err
}

// Steps returns the scan rows of run id ordered by step.
func (s *Store) Steps(ctx context.Context, runID string) ([]Step, error) {
	if err := s.exists(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT step, value, enforced_flux, objective_flux, feasible
		FROM steps
		WHERE run_id = ?
		ORDER BY step ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	steps := make([]Step, 0)
	for rows.Next() {
		var (
			st       Step
			enf, obj sql.NullFloat64
			feasible int
		)
		if err := rows.Scan(&st.Step, &st.Value, &enf, &obj, &feasible); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		st.EnforcedFlux, st.ObjectiveFlux = orNaN(enf), orNaN(obj)
		st.Feasible = feasible != 0
		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate steps: %w", err)
	}

	return steps, nil
}

// Targets returns the target reactions of run id in fseof.Result.Ranked
// order: rank, consistency and |net change| descending, then reaction ID.
func (s *Store) Targets(ctx context.Context, runID string) ([]Classification, error) {
	return s.classifications(ctx, runID, `
		WHERE run_id = ? AND target = 1
		ORDER BY rank DESC,
			CASE WHEN scored > 0 THEN CAST(monotonic AS REAL) / scored ELSE 0 END DESC,
			ABS(net_change) DESC,
			reaction COLLATE BINARY ASC
	`)
}

// Classifications returns the verdict of every tracked reaction of run id,
// ordered by reaction ID.
func (s *Store) Classifications(ctx context.Context, runID string) ([]Classification, error) {
	return s.classifications(ctx, runID, `
		WHERE run_id = ?
		ORDER BY reaction COLLATE BINARY ASC
	`)
}

func (s *Store) classifications(ctx context.Context, runID, where string) ([]Classification, error) {
	if err := s.exists(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT reaction, target, rank, monotonic, scored, min_flux, max_flux, net_change
		FROM classifications
	`+where, runID)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()

	out := make([]Classification, 0)
	for rows.Next() {
		var (
			c      Classification
			target int
		)
		if err := rows.Scan(&c.Reaction, &target, &c.Rank, &c.Monotonic, &c.Scored, &c.Min, &c.Max, &c.NetChange); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		c.Target = target != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classifications: %w", err)
	}

	return out, nil
}

// Fluxes returns the flux series of reaction in run id, ordered by step.
// Infeasible steps are absent.
func (s *Store) Fluxes(ctx context.Context, runID, reaction string) ([]FluxPoint, error) {
	if err := s.exists(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT step, flux
		FROM fluxes
		WHERE run_id = ? AND reaction = ?
		ORDER BY step ASC
	`, runID, reaction)
	if err != nil {
		return nil, fmt.Errorf("query fluxes: %w", err)
	}
	defer rows.Close()

	out := make([]FluxPoint, 0)
	for rows.Next() {
		var p FluxPoint
		if err := rows.Scan(&p.Step, &p.Flux); err != nil {
			return nil, fmt.Errorf("scan flux: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fluxes: %w", err)
	}

	return out, nil
}

// Ranges returns the variability ranges of reaction in run id, ordered by
// step. Runs saved without variability, and missing cells, yield no points.
func (s *Store) Ranges(ctx context.Context, runID, reaction string) ([]RangePoint, error) {
	if err := s.exists(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT step, min_flux, max_flux
		FROM ranges
		WHERE run_id = ? AND reaction = ?
		ORDER BY step ASC
	`, runID, reaction)
	if err != nil {
		return nil, fmt.Errorf("query ranges: %w", err)
	}
	defer rows.Close()

	out := make([]RangePoint, 0)
	for rows.Next() {
		var p RangePoint
		if err := rows.Scan(&p.Step, &p.Min, &p.Max); err != nil {
			return nil, fmt.Errorf("scan range: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ranges: %w", err)
	}

	return out, nil
}

func (s *Store) exists(ctx context.Context, runID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("run %q: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return fmt.Errorf("lookup run: %w", err)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run         Run
		created     string
		variability int
	)
	err := row.Scan(
		&run.ID,
		&created,
		&run.Model,
		&run.Enforced,
		&run.Objective,
		&run.Direction,
		&run.NumSteps,
		&run.Baseline,
		&run.Anchor,
		&run.InfeasibleSteps,
		&run.FailedCells,
		&variability,
		&run.Targets,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	run.Variability = variability != 0

	return run, nil
}

func orNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}

	return v.Float64
}
