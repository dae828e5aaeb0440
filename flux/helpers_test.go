package flux_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fseof/core"
	"github.com/stretchr/testify/require"
)

// branchModel builds IN → a; CONV: a → 2 b; ALT: a → b; OUT: b →.
// With IN ≤ 10, max OUT = 20 through CONV only.
func branchModel(t testing.TB) *core.Model {
	t.Helper()
	m := core.NewModel(core.WithName("branch"))
	require.NoError(t, m.AddMetabolites(
		core.Metabolite{ID: "a_c", Compartment: "c"},
		core.Metabolite{ID: "b_c", Compartment: "c"},
	))
	require.NoError(t, m.AddReactions(
		core.Reaction{ID: "IN", Lower: 0, Upper: 10, Stoichiometry: map[string]float64{"a_c": 1}},
		core.Reaction{ID: "CONV", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"a_c": -1, "b_c": 2}},
		core.Reaction{ID: "ALT", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"a_c": -1, "b_c": 1}},
		core.Reaction{ID: "OUT", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"b_c": -1}},
	))
	require.NoError(t, m.SetObjective("OUT", core.Maximize))

	return m
}

// unboundedModel has an uptake without an upper bound.
func unboundedModel(t testing.TB) *core.Model {
	t.Helper()
	m := core.NewModel()
	require.NoError(t, m.AddMetabolite(core.Metabolite{ID: "a_c"}))
	require.NoError(t, m.AddReactions(
		core.Reaction{ID: "IN", Lower: 0, Upper: math.Inf(1), Stoichiometry: map[string]float64{"a_c": 1}},
		core.Reaction{ID: "OUT", Lower: 0, Upper: math.Inf(1), Stoichiometry: map[string]float64{"a_c": -1}},
	))
	require.NoError(t, m.SetObjective("OUT", core.Maximize))

	return m
}
