package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/builder"
)

const delta = 1e-6

func TestOpenAppliesPragmas(t *testing.T) {
	s := createTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("user_version", "2"))
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	saved, err := s1.SaveRun(ctx, "three-trend", threeTrendResult(t))
	require.NoError(t, err)
	require.NoError(t, s1.Close())
	require.NoError(t, s1.Close(), "second Close is a no-op")

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	runs, err := s2.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, saved.ID, runs[0].ID)
}

func TestSaveRunSummary(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run, err := s.SaveRun(ctx, "three-trend", threeTrendResult(t))
	require.NoError(t, err)

	id, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	got, err := s.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, "three-trend", got.Model)
	assert.Equal(t, builder.ThreeTrendEnforce, got.Enforced)
	assert.Equal(t, builder.ThreeTrendBiomass, got.Objective)
	assert.Equal(t, "max", got.Direction)
	assert.Equal(t, 4, got.NumSteps)
	assert.InDelta(t, 0, got.Baseline, delta)
	assert.InDelta(t, 0.8, got.Anchor, delta)
	assert.Zero(t, got.InfeasibleSteps)
	assert.Zero(t, got.FailedCells)
	assert.False(t, got.Variability)
	assert.Equal(t, 1, got.Targets)
	assert.Equal(t, run.Targets, got.Targets)
}

func TestSaveRunNil(t *testing.T) {
	s := createTestStore(t)
	_, err := s.SaveRun(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrNilResult)
}

func TestStepsAndFluxes(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run, err := s.SaveRun(ctx, "three-trend", threeTrendResult(t))
	require.NoError(t, err)

	steps, err := s.Steps(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, steps, 5)
	for i, st := range steps {
		assert.Equal(t, i, st.Step)
		assert.True(t, st.Feasible)
		assert.InDelta(t, 0.2*float64(i), st.Value, delta)
		assert.InDelta(t, 8-0.2*float64(i), st.ObjectiveFlux, delta)
	}

	inc, err := s.Fluxes(ctx, run.ID, "R_INC")
	require.NoError(t, err)
	require.Len(t, inc, 5)
	for i, p := range inc {
		assert.Equal(t, i, p.Step)
		assert.InDelta(t, 0.2*float64(i), p.Flux, delta)
	}

	none, err := s.Fluxes(ctx, run.ID, "NOPE")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRanges(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run, err := s.SaveRun(ctx, "three-trend", scanThreeTrend(t, true))
	require.NoError(t, err)
	assert.True(t, run.Variability)

	inc, err := s.Ranges(ctx, run.ID, "R_INC")
	require.NoError(t, err)
	require.Len(t, inc, 5)
	for i, p := range inc {
		assert.Equal(t, i, p.Step)
		assert.InDelta(t, 0.2*float64(i), p.Min, delta)
		assert.Less(t, p.Max-p.Min, 1e-3)
	}

	// Only targets are ranged.
	dec, err := s.Ranges(ctx, run.ID, "R_DEC")
	require.NoError(t, err)
	assert.NotNil(t, dec)
	assert.Empty(t, dec)

	plain, err := s.SaveRun(ctx, "three-trend", threeTrendResult(t))
	require.NoError(t, err)
	none, err := s.Ranges(ctx, plain.ID, "R_INC")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = s.Ranges(ctx, "missing", "R_INC")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestTargetsAndClassifications(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run, err := s.SaveRun(ctx, "three-trend", threeTrendResult(t))
	require.NoError(t, err)

	targets, err := s.Targets(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "R_INC", targets[0].Reaction)
	assert.True(t, targets[0].Target)
	assert.InDelta(t, 0.8, targets[0].NetChange, delta)

	all, err := s.Classifications(ctx, run.ID)
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, c := range all {
		ids[i] = c.Reaction
	}
	assert.Equal(t, []string{"R_CONST", "R_DEC", "R_INC"}, ids)
	assert.False(t, all[0].Target)
	assert.InDelta(t, -0.8, all[1].NetChange, delta)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	empty, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	res := threeTrendResult(t)
	first, err := s.SaveRun(ctx, "first", res)
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, "second", res)
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
}

func TestUnknownRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	const id = "00000000-0000-7000-8000-000000000000"

	_, err := s.Run(ctx, id)
	assert.ErrorIs(t, err, ErrRunNotFound)
	_, err = s.Steps(ctx, id)
	assert.ErrorIs(t, err, ErrRunNotFound)
	_, err = s.Targets(ctx, id)
	assert.ErrorIs(t, err, ErrRunNotFound)
	_, err = s.Fluxes(ctx, id, "R_INC")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, s.DeleteRun(ctx, id), ErrRunNotFound)
}

func TestDeleteRunCascades(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run, err := s.SaveRun(ctx, "three-trend", scanThreeTrend(t, true))
	require.NoError(t, err)

	require.NoError(t, s.DeleteRun(ctx, run.ID))

	for _, table := range []string{"steps", "classifications", "fluxes", "ranges"} {
		var n int
		require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE run_id = ?", run.ID).Scan(&n))
		assert.Zero(t, n, table)
	}
	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
