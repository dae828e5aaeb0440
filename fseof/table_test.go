package fseof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/flux"
	"github.com/katalvlaran/fseof/fseof"
)

func TestFluxTable(t *testing.T) {
	ft := fseof.NewFluxTable([]string{"b", "a", "b"}, 3)
	assert.Equal(t, []string{"a", "b"}, ft.Reactions())
	assert.Equal(t, 3, ft.Steps())

	require.NoError(t, ft.SetRow(0, map[string]float64{"a": 1, "b": 2, "ignored": 9}))
	require.NoError(t, ft.SetRow(2, map[string]float64{"a": 3}))
	assert.Error(t, ft.SetRow(3, nil))

	assert.True(t, ft.Available(0))
	assert.False(t, ft.Available(1))
	_, ok := ft.At(2, "b")
	assert.False(t, ok)
	_, ok = ft.At(0, "zzz")
	assert.False(t, ok)
	assert.Nil(t, ft.Row(1))
	assert.Equal(t, map[string]float64{"a": 3}, ft.Row(2))

	steps, values := ft.Series("a")
	assert.Equal(t, []int{0, 2}, steps)
	assert.Equal(t, []float64{1, 3}, values)

	cp := ft.Clone()
	require.NoError(t, ft.SetRow(1, map[string]float64{"a": 7}))
	assert.False(t, cp.Available(1))
}

func TestRangeTable(t *testing.T) {
	rt := fseof.NewRangeTable([]string{"r"}, 2)
	require.NoError(t, rt.Set(1, "r", flux.Range{Min: 1, Max: 2}))
	assert.Error(t, rt.Set(0, "nope", flux.Range{}))
	assert.Error(t, rt.Set(5, "r", flux.Range{}))

	_, ok := rt.At(0, "r")
	assert.False(t, ok)
	r, ok := rt.At(1, "r")
	require.True(t, ok)
	assert.Equal(t, 1.0, r.Width())

	steps, ranges := rt.Series("r")
	assert.Equal(t, []int{1}, steps)
	assert.Equal(t, []flux.Range{{Min: 1, Max: 2}}, ranges)
}
