package fseof_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/flux"
	"github.com/katalvlaran/fseof/fseof"
)

func TestRank(t *testing.T) {
	separated := []flux.Range{{Min: 0, Max: 0}, {Min: 1, Max: 1.0001}, {Min: 2, Max: 2}}
	overlapping := []flux.Range{{Min: 0, Max: 5}, {Min: 1, Max: 5}, {Min: 2, Max: 5}}
	wide := []flux.Range{{Min: 0, Max: 0.5}, {Min: 1, Max: 1.5}, {Min: 2, Max: 2.5}}
	falling := []flux.Range{{Min: 2, Max: 2}, {Min: 1, Max: 1}, {Min: 0, Max: 0}}

	assert.Equal(t, 3, fseof.Rank(separated, fseof.Max, 1e-6, 1e-3))
	assert.Equal(t, 1, fseof.Rank(overlapping, fseof.Max, 1e-6, 1e-3))
	assert.Equal(t, 2, fseof.Rank(wide, fseof.Max, 1e-6, 1e-3))
	assert.Equal(t, 0, fseof.Rank(falling, fseof.Max, 1e-6, 1e-3))
	assert.Equal(t, 3, fseof.Rank(falling, fseof.Min, 1e-6, 1e-3))
	assert.Equal(t, 0, fseof.Rank(separated[:1], fseof.Max, 1e-6, 1e-3))
}

// TestRun_VariabilityTargets ranks the single target of the toy network.
func TestRun_VariabilityTargets(t *testing.T) {
	m := threeTrend(t)
	before := m.SnapshotBounds()
	cfg := baseConfig(4)
	cfg.ComputeVariability = true
	var vcalls int
	cfg.VariabilityProgress = func(step, total int) { vcalls++ }

	res, err := fseof.Run(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, vcalls)

	vt := res.Variability()
	require.NotNil(t, vt)
	assert.Equal(t, []string{"R_INC"}, vt.Reactions())
	for i := 0; i < 5; i++ {
		r, ok := vt.At(i, "R_INC")
		require.True(t, ok)
		assert.InDelta(t, 0.2*float64(i), r.Min, delta)
		assert.Less(t, r.Width(), 1e-3)
	}

	c, ok := res.Classification("R_INC")
	require.True(t, ok)
	assert.Equal(t, 3, c.Rank)
	ranked := res.Ranked()
	require.Len(t, ranked, 1)
	assert.Equal(t, "R_INC", ranked[0].Reaction)
	assert.Equal(t, before, m.SnapshotBounds())
}

// TestRun_VariabilityAll covers every tracked reaction.
func TestRun_VariabilityAll(t *testing.T) {
	cfg := baseConfig(4)
	cfg.ComputeVariability = true
	cfg.VariabilityScope = fseof.ScopeAll

	res, err := fseof.Run(context.Background(), threeTrend(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"R_CONST", "R_DEC", "R_INC"}, res.Variability().Reactions())

	cls := res.Classifications()
	assert.Equal(t, 3, cls["R_INC"].Rank)
	assert.Equal(t, 0, cls["R_DEC"].Rank)
	assert.Equal(t, 1, cls["R_CONST"].Rank)
}

// TestRun_VariabilityFailures records failed cells and keeps the scan.
func TestRun_VariabilityFailures(t *testing.T) {
	boom := errors.New("fva boom")
	inner := flux.DefaultVariability(flux.DefaultOptions())
	cfg := baseConfig(4)
	cfg.ComputeVariability = true
	cfg.VariabilityScope = fseof.ScopeAll
	cfg.Variability = func(m *core.Model, ids []string) (*flux.VariabilityResult, error) {
		lo, _, err := m.Bounds("E")
		if err != nil {
			return nil, err
		}
		if lo > 0.5 && lo < 0.7 {
			return nil, boom
		}

		return inner(m, ids)
	}

	res, err := fseof.Run(context.Background(), threeTrend(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, fseof.Missing{VariabilityCells: 3}, res.Missing())
	for _, f := range res.VariabilityErrors() {
		assert.Equal(t, 3, f.Step)
		assert.ErrorIs(t, f, fseof.ErrVariabilityStepFailed)
		assert.ErrorIs(t, f, boom)
	}
	_, ok := res.Variability().At(3, "R_INC")
	assert.False(t, ok)
	assert.ErrorIs(t, res.Err(), boom)
}
