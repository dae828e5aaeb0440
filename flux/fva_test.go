package flux_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/flux"
)

func TestVariability_AtOptimum(t *testing.T) {
	m := branchModel(t)
	res, err := flux.Variability(m, nil, flux.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Failed)
	assert.InDelta(t, 20.0, res.Objective, delta)

	assert.InDelta(t, 10.0, res.Ranges["CONV"].Min, 1e-5)
	assert.InDelta(t, 10.0, res.Ranges["CONV"].Max, 1e-5)
	assert.InDelta(t, 0.0, res.Ranges["ALT"].Max, 1e-5)
	assert.Len(t, res.Ranges, 4)
}

func TestVariability_Fraction(t *testing.T) {
	m := branchModel(t)
	opts := flux.DefaultOptions()
	opts.FractionOfOptimum = 0.5
	res, err := flux.Variability(m, []string{"CONV", "ALT"}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Ranges["CONV"].Min, 1e-5)
	assert.InDelta(t, 10.0, res.Ranges["CONV"].Max, 1e-5)
	assert.InDelta(t, 0.0, res.Ranges["ALT"].Min, 1e-5)
	assert.InDelta(t, 10.0, res.Ranges["ALT"].Max, 1e-5)
	assert.Len(t, res.Ranges, 2)
}

func TestVariability_Errors(t *testing.T) {
	m := branchModel(t)
	_, err := flux.Variability(m, []string{"nope"}, flux.DefaultOptions())
	assert.ErrorIs(t, err, flux.ErrReactionNotFound)

	opts := flux.DefaultOptions()
	opts.FractionOfOptimum = 1.5
	_, err = flux.Variability(m, nil, opts)
	assert.ErrorIs(t, err, flux.ErrInvalidFraction)

	require.NoError(t, m.SetBounds("OUT", 30, 1000))
	_, err = flux.Variability(m, nil, flux.DefaultOptions())
	assert.ErrorIs(t, err, flux.ErrInfeasible)
}

func TestVariability_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := flux.DefaultOptions()
	opts.Ctx = ctx
	_, err := flux.Variability(branchModel(t), nil, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVariability_UnboundedReactionIsRecordedAsFailed(t *testing.T) {
	m := branchModel(t)
	// A free supply of a_c and an unbounded sink of b_c make CONV unbounded
	// above once its own cap is lifted; OUT stays capped at 1000.
	require.NoError(t, m.SetBounds("CONV", 0, math.Inf(1)))
	require.NoError(t, m.AddReactions(
		core.Reaction{ID: "SUPPLY", Lower: math.Inf(-1), Upper: math.Inf(1), Stoichiometry: map[string]float64{"a_c": 1}},
		core.Reaction{ID: "SINK", Lower: 0, Upper: math.Inf(1), Stoichiometry: map[string]float64{"b_c": -1}},
	))
	res, err := flux.Variability(m, []string{"CONV", "IN"}, flux.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, res.Failed, "CONV")
	require.Contains(t, res.Ranges, "IN")
	assert.InDelta(t, 0.0, res.Ranges["IN"].Min, 1e-6)
	assert.InDelta(t, 10.0, res.Ranges["IN"].Max, 1e-6)
}
