// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.

package builder

import "math"

// BuilderOption customizes a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the reaction ID generator used by LinearChain.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithUptake sets the uptake rate of medium components and of glucose in
// CoreCarbon. Panics on negative, NaN or infinite values.
func WithUptake(u float64) BuilderOption {
	if u < 0 || math.IsNaN(u) || math.IsInf(u, 0) {
		panic("builder: WithUptake(u<0 or non-finite)")
	}

	return func(c *builderConfig) { c.uptake = u }
}

// WithMaintenance sets the ATPM lower bound. Panics on negative or non-finite values.
func WithMaintenance(atp float64) BuilderOption {
	if atp < 0 || math.IsNaN(atp) || math.IsInf(atp, 0) {
		panic("builder: WithMaintenance(atp<0 or non-finite)")
	}

	return func(c *builderConfig) { c.maintenance = atp }
}

// WithReversibleBounds sets the bounds of reversible pathway reactions
// (the crt reactions, IPDDI). Panics unless lo <= 0 <= hi.
func WithReversibleBounds(lo, hi float64) BuilderOption {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > 0 || hi < 0 {
		panic("builder: WithReversibleBounds requires lo <= 0 <= hi")
	}

	return func(c *builderConfig) { c.revLower, c.revUpper = lo, hi }
}
