package fseof_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/fseof"
)

// threeTrend builds a toy network with one increasing, one decreasing and one
// constant reaction under enforcement of E:
//
//	UP:      → s        [0, 10]
//	R_CONST: s → y      [2, 1000]   DM_y: y →
//	R_DEC:   s → x                  BIO:  x →   (objective)
//	R_INC:   s → p                  E:    p →   (enforced)
//
// Baseline: BIO = 8, E = 0. At enforced flux v: R_INC = v, R_DEC = 8 − v.
func threeTrend(t testing.TB) *core.Model {
	t.Helper()
	m := core.NewModel(core.WithName("three-trend"))
	require.NoError(t, m.AddMetabolites(
		core.Metabolite{ID: "s_c", Compartment: "c"},
		core.Metabolite{ID: "x_c", Compartment: "c"},
		core.Metabolite{ID: "y_c", Compartment: "c"},
		core.Metabolite{ID: "p_c", Compartment: "c"},
	))
	require.NoError(t, m.AddReactions(
		core.Reaction{ID: "UP", Lower: 0, Upper: 10, Stoichiometry: map[string]float64{"s_c": 1}},
		core.Reaction{ID: "R_CONST", Lower: 2, Upper: 1000, Stoichiometry: map[string]float64{"s_c": -1, "y_c": 1}},
		core.Reaction{ID: "DM_y", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"y_c": -1}},
		core.Reaction{ID: "R_DEC", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"s_c": -1, "x_c": 1}},
		core.Reaction{ID: "BIO", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"x_c": -1}},
		core.Reaction{ID: "R_INC", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"s_c": -1, "p_c": 1}},
		core.Reaction{ID: "E", Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{"p_c": -1}},
	))
	require.NoError(t, m.SetObjective("BIO", core.Maximize))

	return m
}

// reversedExport swaps E for E2 (p ←, bounds [−1000, 0]) so that enforcement
// runs in the Min direction.
func reversedExport(t testing.TB) *core.Model {
	t.Helper()
	m := threeTrend(t)
	require.NoError(t, m.RemoveReaction("E"))
	require.NoError(t, m.AddReaction(core.Reaction{
		ID: "E2", Lower: -1000, Upper: 0, Stoichiometry: map[string]float64{"p_c": 1},
	}))

	return m
}

func baseConfig(steps int) fseof.Config {
	cfg := fseof.DefaultConfig()
	cfg.NumSteps = steps
	cfg.Enforced = "E"
	cfg.Objective = "BIO"

	return cfg
}
