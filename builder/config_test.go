package builder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "R3", cfg.idFn(3))
	assert.Equal(t, DefaultUptake, cfg.uptake)
	assert.Equal(t, DefaultMaintenance, cfg.maintenance)
	assert.Equal(t, DefaultLower, cfg.revLower)
	assert.Equal(t, DefaultUpper, cfg.revUpper)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithUptake(3), WithUptake(7), WithSymbNumb("X"), WithDefaultIDs(),
		WithMaintenance(0), WithReversibleBounds(-5, 5))
	assert.Equal(t, 7.0, cfg.uptake)
	assert.Equal(t, "4", cfg.idFn(4))
	assert.Equal(t, 0.0, cfg.maintenance)
	assert.Equal(t, -5.0, cfg.revLower)
	assert.Equal(t, 5.0, cfg.revUpper)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithUptake(-1) })
	assert.Panics(t, func() { WithUptake(math.NaN()) })
	assert.Panics(t, func() { WithMaintenance(math.Inf(1)) })
	assert.Panics(t, func() { WithReversibleBounds(1, 2) })
	assert.Panics(t, func() { WithReversibleBounds(-2, -1) })
}
