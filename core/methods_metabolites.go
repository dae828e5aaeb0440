// File: methods_metabolites.go
// Role: Metabolite and gene lifecycle & queries.
// Determinism:
//   - Metabolites()/MetaboliteIDs()/Genes() return results sorted by ID.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// NormalizeID returns the canonical (NFC) form of an identifier, as stored by
// the model. Callers comparing their own IDs against model IDs use it.
func NormalizeID(id string) string {
	return normalizeID(id)
}

// normalizeID returns the NFC form of id so visually identical identifiers
// typed with different Unicode compositions resolve to the same entry.
func normalizeID(id string) string {
	return norm.NFC.String(id)
}

// AddMetabolite inserts met into the catalog.
//
// Steps:
//  1. Normalise and validate the ID (ErrEmptyID).
//  2. Lock mu; reject duplicates with ErrDuplicateMetabolite.
//  3. Store a private copy.
//
// Complexity: O(1).
func (m *Model) AddMetabolite(met Metabolite) error {
	met.ID = normalizeID(met.ID)
	if met.ID == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.metabolites[met.ID]; ok {
		return fmt.Errorf("AddMetabolite(%q): %w", met.ID, ErrDuplicateMetabolite)
	}
	m.metabolites[met.ID] = &met

	return nil
}

// AddMetabolites inserts every metabolite in order and stops at the first error.
func (m *Model) AddMetabolites(mets ...Metabolite) error {
	for _, met := range mets {
		if err := m.AddMetabolite(met); err != nil {
			return err
		}
	}

	return nil
}

// HasMetabolite reports whether id is in the catalog.
func (m *Model) HasMetabolite(id string) bool {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.metabolites[id]

	return ok
}

// Metabolite returns a copy of the metabolite with the given ID.
func (m *Model) Metabolite(id string) (Metabolite, error) {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	met, ok := m.metabolites[id]
	if !ok {
		return Metabolite{}, fmt.Errorf("Metabolite(%q): %w", id, ErrMetaboliteNotFound)
	}

	return *met, nil
}

// Metabolites returns copies of all metabolites sorted by ID.
// Complexity: O(M log M).
func (m *Model) Metabolites() []Metabolite {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Metabolite, 0, len(m.metabolites))
	for _, met := range m.metabolites {
		out = append(out, *met)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// MetaboliteIDs returns all metabolite IDs sorted ascending.
func (m *Model) MetaboliteIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.metabolites))
	for id := range m.metabolites {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AddGene inserts a gene; duplicates are rejected with ErrDuplicateGene.
func (m *Model) AddGene(g Gene) error {
	g.ID = normalizeID(g.ID)
	if g.ID == "" {
		return ErrEmptyID
	}
	if g.Name == "" {
		g.Name = g.ID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.genes[g.ID]; ok {
		return fmt.Errorf("AddGene(%q): %w", g.ID, ErrDuplicateGene)
	}
	m.genes[g.ID] = &g

	return nil
}

// HasGene reports whether id is a known gene.
func (m *Model) HasGene(id string) bool {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.genes[id]

	return ok
}

// Genes returns copies of all genes sorted by ID.
func (m *Model) Genes() []Gene {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Gene, 0, len(m.genes))
	for _, g := range m.genes {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
