// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = SymbolNumberIDFn("R")  ("R0","R1",...) for LinearChain
//   • uptake      = DefaultUptake          (medium and glucose uptake)
//   • maintenance = DefaultMaintenance     (ATPM lower bound)
//   • revLower/Upper = DefaultLower/Upper  (reversible pathway reactions)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn        IDFn
	uptake      float64
	maintenance float64
	revLower    float64
	revUpper    float64
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        SymbolNumberIDFn("R"),
		uptake:      DefaultUptake,
		maintenance: DefaultMaintenance,
		revLower:    DefaultLower,
		revUpper:    DefaultUpper,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
