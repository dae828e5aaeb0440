// File: methods_clone.go
// Role: Cloning and clearing model instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source model.
//   - The clone is never busy, even when the source is held by a scan.

package core

// CloneEmpty returns a new Model with identical configuration and metabolites,
// but no reactions, genes or objective.
//
// Complexity: O(M).
func (m *Model) CloneEmpty() *Model {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := NewModel(WithName(m.name))
	clone.autoGenes = m.autoGenes
	for id, met := range m.metabolites {
		cp := *met
		clone.metabolites[id] = &cp
	}

	return clone
}

// Clone returns a deep copy of the Model: configuration, metabolites, genes,
// reactions (bounds and stoichiometry) and objective. Use it to give each
// concurrent scan its own instance.
//
// Complexity: O(M + G + nnz).
func (m *Model) Clone() *Model {
	clone := m.CloneEmpty()

	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, g := range m.genes {
		cp := *g
		clone.genes[id] = &cp
	}
	for id, r := range m.reactions {
		cp := r.clone()
		clone.reactions[id] = &cp
	}
	clone.objective, clone.sense = m.objective, m.sense

	return clone
}

// Clear resets the model to an empty state while preserving configuration flags.
//
// Complexity: O(1) for map reallocation.
func (m *Model) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metabolites = make(map[string]*Metabolite)
	m.reactions = make(map[string]*Reaction)
	m.genes = make(map[string]*Gene)
	m.objective, m.sense = "", Maximize
}
