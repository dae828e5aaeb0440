// Package builder_test verifies the model constructors: catalog contents,
// optima of the closed-form networks and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/builder"
	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/flux"
)

const delta = 1e-6

func optimum(t *testing.T, m *core.Model) flux.Solution {
	t.Helper()
	sol, err := flux.Optimize(m, flux.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, flux.Optimal, sol.Status)

	return sol
}

func TestThreeTrend(t *testing.T) {
	m, err := builder.BuildModel(nil, nil, builder.ThreeTrend())
	require.NoError(t, err)
	assert.Equal(t, 7, m.ReactionCount())
	assert.Equal(t, 4, m.MetaboliteCount())

	sol := optimum(t, m)
	assert.InDelta(t, 8.0, sol.ObjectiveValue, delta)
	assert.InDelta(t, 0.0, sol.Flux("E"), delta)
	assert.InDelta(t, 2.0, sol.Flux("R_CONST"), delta)
}

func TestLinearChain(t *testing.T) {
	m, err := builder.BuildModel(nil, []builder.BuilderOption{builder.WithUptake(4), builder.WithExcelColumnIDs()},
		builder.LinearChain(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "IN", "OUT"}, m.ReactionIDs())
	sol := optimum(t, m)
	assert.InDelta(t, 4.0, sol.ObjectiveValue, delta)
	assert.InDelta(t, 4.0, sol.Flux("B"), delta)

	_, err = builder.BuildModel(nil, nil, builder.LinearChain(0))
	assert.ErrorIs(t, err, builder.ErrTooFewReactions)
}

func TestCoreCarbon(t *testing.T) {
	m, err := builder.BuildModel([]core.ModelOption{core.WithAutoGenes()}, nil, builder.CoreCarbon())
	require.NoError(t, err)
	obj, sense, err := m.Objective()
	require.NoError(t, err)
	assert.Equal(t, builder.BiomassReaction, obj)
	assert.Equal(t, core.Maximize, sense)
	assert.True(t, m.HasGene("gltA"))
	assert.Equal(t, []string{"EX_co2_e", builder.GlucoseExchange}, m.Exchanges())

	sol := optimum(t, m)
	assert.InDelta(t, 1.975, sol.ObjectiveValue, delta)
	assert.InDelta(t, 1.0, sol.Flux(builder.MaintenanceATP), delta)
	assert.InDelta(t, 0.0, sol.Flux("MEP"), delta)
}

func TestLycopene(t *testing.T) {
	m, err := builder.BuildModel([]core.ModelOption{core.WithAutoGenes()}, nil,
		builder.CoreCarbon(), builder.Lycopene(), builder.LBMedium())
	require.NoError(t, err)

	for _, id := range []string{"ZCRTE", "ZCRTB", "ZCRTI", builder.LycopeneDemand} {
		assert.True(t, m.HasReaction(id), id)
	}
	for _, g := range []string{"crtE", "crtB", "crtI"} {
		assert.True(t, m.HasGene(g), g)
	}
	lo, hi, err := m.Bounds("ZCRTI")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-1000, 1000}, [2]float64{lo, hi})
	assert.Equal(t, map[string]float64{builder.GlucoseExchange: 10}, m.Medium())

	sol := optimum(t, m)
	assert.InDelta(t, 1.975, sol.ObjectiveValue, delta)
	assert.InDelta(t, 0.0, sol.Flux(builder.LycopeneDemand), delta)
}

func TestLycopene_Errors(t *testing.T) {
	_, err := builder.BuildModel(nil, nil, builder.Lycopene())
	assert.ErrorIs(t, err, builder.ErrMissingPrecursor)

	_, err = builder.BuildModel(nil, nil, builder.CoreCarbon(), builder.Lycopene(), builder.Lycopene())
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrDuplicateMetabolite)

	host, err := builder.BuildModel(nil, nil, builder.CoreCarbon())
	require.NoError(t, err)
	require.NoError(t, host.AddGene(core.Gene{ID: "crtB"}))
	err = builder.Apply(host, nil, builder.Lycopene())
	assert.ErrorIs(t, err, core.ErrDuplicateGene)

	_, err = builder.BuildModel(nil, nil, builder.CoreCarbon(), builder.CoreCarbon())
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrDuplicateMetabolite)
}

func TestBuildModel_Errors(t *testing.T) {
	_, err := builder.BuildModel(nil, nil, builder.ThreeTrend(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildModel(nil, nil, builder.Objective("NOPE", core.Maximize))
	assert.ErrorIs(t, err, core.ErrReactionNotFound)

	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}

func TestLBMedium_UptakeOption(t *testing.T) {
	m, err := builder.BuildModel(nil, []builder.BuilderOption{builder.WithUptake(5)},
		builder.CoreCarbon(), builder.LBMedium())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{builder.GlucoseExchange: 5}, m.Medium())
	assert.Contains(t, builder.LBMediumComponents(), builder.GlucoseExchange)
}

func TestCatalog(t *testing.T) {
	names := make([]string, 0)
	for _, e := range builder.Catalog() {
		names = append(names, e.Name)
		m, err := e.Build()
		require.NoError(t, err, e.Name)
		assert.True(t, m.HasReaction(e.Enforced), e.Name)
		assert.True(t, m.HasReaction(e.Objective), e.Name)
		assert.Equal(t, e.Name, m.Name())
	}
	assert.Equal(t, []string{"core-carbon", "lycopene", "three-trend"}, names)

	_, err := builder.Build("nope")
	assert.ErrorIs(t, err, builder.ErrUnknownModel)
}
