package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/builder"
	"github.com/katalvlaran/fseof/fseof"
)

// createTestStore opens a fresh store in a temp dir with a deterministic clock.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	return s
}

// threeTrendResult scans the three-trend toy with four steps: the anchor is
// 0.8 and R_INC is the only target.
func threeTrendResult(t *testing.T) *fseof.Result {
	t.Helper()

	return scanThreeTrend(t, false)
}

// scanThreeTrend is threeTrendResult with optional variability over targets.
func scanThreeTrend(t *testing.T, variability bool) *fseof.Result {
	t.Helper()
	m, err := builder.Build("three-trend")
	require.NoError(t, err)

	cfg := fseof.DefaultConfig()
	cfg.NumSteps = 4
	cfg.Enforced = builder.ThreeTrendEnforce
	cfg.Objective = builder.ThreeTrendBiomass
	cfg.ComputeVariability = variability
	res, err := fseof.Run(context.Background(), m, cfg)
	require.NoError(t, err)

	return res
}
