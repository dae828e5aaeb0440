// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// api.go: public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: BuildModel(mopts, bopts, cons...). Creates the model,
//     resolves the config, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options and constructor order ⇒ identical models.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fseof/core"
)

// Constructor applies a deterministic model mutation using the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(m *core.Model, cfg builderConfig) error

// BuildModel creates a core.Model with mopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// A constructor error is wrapped as "BuildModel: %w" and returned at once.
//
// Complexity: O(len(bopts)) + Σ cost of the constructors.
func BuildModel(mopts []core.ModelOption, bopts []BuilderOption, cons ...Constructor) (*core.Model, error) {
	m := core.NewModel(mopts...)
	if err := Apply(m, bopts, cons...); err != nil {
		return nil, err
	}

	return m, nil
}

// Apply runs cons against an existing model, e.g. to add the Lycopene
// pathway to a model loaded elsewhere. On error the model may be partially
// extended.
func Apply(m *core.Model, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("%s: nil model: %w", MethodBuildModel, ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildModel, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodBuildModel, err)
		}
	}

	return nil
}

// Objective sets the primary objective of the model.
func Objective(id string, sense core.Sense) Constructor {
	return func(m *core.Model, _ builderConfig) error {
		if err := m.SetObjective(id, sense); err != nil {
			return wrapf(MethodObjective, id, err)
		}

		return nil
	}
}
