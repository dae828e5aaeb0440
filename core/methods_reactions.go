// File: methods_reactions.go
// Role: Reaction lifecycle & queries: AddReaction/RemoveReaction/Reaction/Reactions,
//       boundary and exchange classification, gene-rule parsing.
// Determinism:
//   - Reactions()/ReactionIDs()/BoundaryReactions() return results sorted by ID.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AddReaction validates r and inserts a private copy into the catalog.
//
// Steps:
//  1. Normalise and validate the ID (ErrEmptyID).
//  2. Validate bounds: no NaN, Lower <= Upper (ErrInvalidBounds).
//  3. Lock mu; reject duplicate IDs (ErrDuplicateReaction).
//  4. Every stoichiometry key must name a known metabolite (ErrMetaboliteNotFound);
//     zero coefficients are dropped.
//  5. With WithAutoGenes, register unknown genes named in GeneRule.
//
// Complexity: O(k) for k participating metabolites plus O(len(GeneRule)).
func (m *Model) AddReaction(r Reaction) error {
	r.ID = normalizeID(r.ID)
	if r.ID == "" {
		return ErrEmptyID
	}
	if err := validateBounds(r.Lower, r.Upper); err != nil {
		return fmt.Errorf("AddReaction(%q): %w", r.ID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reactions[r.ID]; ok {
		return fmt.Errorf("AddReaction(%q): %w", r.ID, ErrDuplicateReaction)
	}

	stoich := make(map[string]float64, len(r.Stoichiometry))
	for metID, coef := range r.Stoichiometry {
		metID = normalizeID(metID)
		if _, ok := m.metabolites[metID]; !ok {
			return fmt.Errorf("AddReaction(%q): metabolite %q: %w", r.ID, metID, ErrMetaboliteNotFound)
		}
		if math.IsNaN(coef) || math.IsInf(coef, 0) {
			return fmt.Errorf("AddReaction(%q): coefficient of %q is not finite: %w", r.ID, metID, ErrInvalidBounds)
		}
		if coef == 0 {
			continue
		}
		stoich[metID] += coef
	}
	r.Stoichiometry = stoich

	if m.autoGenes {
		for _, gid := range ParseGeneRule(r.GeneRule) {
			gid = normalizeID(gid)
			if _, ok := m.genes[gid]; !ok {
				m.genes[gid] = &Gene{ID: gid, Name: gid}
			}
		}
	}
	m.reactions[r.ID] = &r

	return nil
}

// AddReactions inserts every reaction in order and stops at the first error.
func (m *Model) AddReactions(rs ...Reaction) error {
	for _, r := range rs {
		if err := m.AddReaction(r); err != nil {
			return err
		}
	}

	return nil
}

// RemoveReaction deletes a reaction. If it was the objective, the objective is cleared.
func (m *Model) RemoveReaction(id string) error {
	id = normalizeID(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reactions[id]; !ok {
		return fmt.Errorf("RemoveReaction(%q): %w", id, ErrReactionNotFound)
	}
	delete(m.reactions, id)
	if m.objective == id {
		m.objective = ""
	}

	return nil
}

// HasReaction reports whether id is in the catalog.
func (m *Model) HasReaction(id string) bool {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.reactions[id]

	return ok
}

// Reaction returns a deep copy of the reaction with the given ID.
func (m *Model) Reaction(id string) (Reaction, error) {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reactions[id]
	if !ok {
		return Reaction{}, fmt.Errorf("Reaction(%q): %w", id, ErrReactionNotFound)
	}

	return r.clone(), nil
}

// Reactions returns deep copies of all reactions sorted by ID.
// Complexity: O(R log R + nnz).
func (m *Model) Reactions() []Reaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Reaction, 0, len(m.reactions))
	for _, r := range m.reactions {
		out = append(out, r.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// ReactionIDs returns all reaction IDs sorted ascending.
func (m *Model) ReactionIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.reactions))
	for id := range m.reactions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// IsBoundary reports whether the reaction exists and has exactly one metabolite.
func (m *Model) IsBoundary(id string) bool {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reactions[id]

	return ok && r.IsBoundary()
}

// BoundaryReactions returns the IDs of all boundary reactions, sorted.
func (m *Model) BoundaryReactions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0)
	for id, r := range m.reactions {
		if r.IsBoundary() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// isExchangeLocked classifies r as an exchange: a boundary reaction whose only
// metabolite lives in the extracellular compartment, or, when the compartment
// is unset, whose ID carries the conventional "EX_" prefix.
// Caller must hold mu.
func (m *Model) isExchangeLocked(r *Reaction) bool {
	if !r.IsBoundary() {
		return false
	}
	for metID := range r.Stoichiometry {
		if met, ok := m.metabolites[metID]; ok && met.Compartment != "" {
			return met.Compartment == ExtracellularCompartment
		}
	}

	return strings.HasPrefix(r.ID, "EX_")
}

// Exchanges returns the IDs of all exchange reactions, sorted.
func (m *Model) Exchanges() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0)
	for id, r := range m.reactions {
		if m.isExchangeLocked(r) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// ParseGeneRule extracts gene identifiers from an association rule such as
// "(b0001 and b0002) or b0003". Boolean keywords and parentheses are dropped;
// the result keeps first-occurrence order without duplicates.
func ParseGeneRule(rule string) []string {
	fields := strings.FieldsFunc(rule, func(r rune) bool {
		return r == '(' || r == ')' || r == ' ' || r == '\t'
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "and", "or":
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}

	return out
}
