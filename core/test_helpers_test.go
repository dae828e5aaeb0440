// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/fseof/core"
	"github.com/stretchr/testify/require"
)

// Common identifiers used across core tests.
const (
	MetA  = "a_c"
	MetB  = "b_c"
	MetAe = "a_e"

	RxnEX   = "EX_a_e"
	RxnT    = "Ta"
	RxnConv = "CONV"
	RxnDM   = "DM_b_c"
)

// newChain builds a_e <-> a_c -> b_c -> (demand), an importer chain with one
// exchange, one transport, one conversion and one demand reaction.
func newChain(t *testing.T) *core.Model {
	t.Helper()
	m := core.NewModel(core.WithName("chain"), core.WithAutoGenes())
	require.NoError(t, m.AddMetabolites(
		core.Metabolite{ID: MetAe, Compartment: "e"},
		core.Metabolite{ID: MetA, Compartment: "c"},
		core.Metabolite{ID: MetB, Compartment: "c"},
	))
	require.NoError(t, m.AddReactions(
		core.Reaction{ID: RxnEX, Lower: -10, Upper: 1000, Stoichiometry: map[string]float64{MetAe: -1}},
		core.Reaction{ID: RxnT, Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{MetAe: -1, MetA: 1}, GeneRule: "g1"},
		core.Reaction{ID: RxnConv, Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{MetA: -1, MetB: 1}, GeneRule: "(g2 and g3) or g2"},
		core.Reaction{ID: RxnDM, Lower: 0, Upper: 1000, Stoichiometry: map[string]float64{MetB: -1}},
	))
	require.NoError(t, m.SetObjective(RxnDM, core.Maximize))

	return m
}
