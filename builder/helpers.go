// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// helpers.go: shared insertion helpers. Every helper wraps model errors with
// the calling method so failures read "<Method>: <what>: ...".

package builder

import (
	"fmt"

	"github.com/katalvlaran/fseof/core"
)

// met is a compact Metabolite literal.
func met(id, name, formula string, charge int, compartment string) core.Metabolite {
	return core.Metabolite{ID: id, Name: name, Formula: formula, Charge: charge, Compartment: compartment}
}

// rxn is a compact Reaction literal.
func rxn(id, name string, lo, hi float64, stoich map[string]float64, rule string) core.Reaction {
	return core.Reaction{ID: id, Name: name, Lower: lo, Upper: hi, Stoichiometry: stoich, GeneRule: rule}
}

func addMetabolites(m *core.Model, method string, mets ...core.Metabolite) error {
	for _, x := range mets {
		if err := m.AddMetabolite(x); err != nil {
			return wrapf(method, "metabolite "+x.ID, err)
		}
	}

	return nil
}

func addReactions(m *core.Model, method string, rs ...core.Reaction) error {
	for _, r := range rs {
		if err := m.AddReaction(r); err != nil {
			return wrapf(method, "reaction "+r.ID, err)
		}
	}

	return nil
}

// requireMetabolites reports the first id missing from m.
func requireMetabolites(m *core.Model, method string, ids ...string) error {
	for _, id := range ids {
		if !m.HasMetabolite(id) {
			return fmt.Errorf("%s: metabolite %q: %w", method, id, ErrMissingPrecursor)
		}
	}

	return nil
}
