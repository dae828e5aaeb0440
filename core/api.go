// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and the
//       Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// ModelStats is a point-in-time snapshot of catalog sizes.
type ModelStats struct {
	Metabolites int
	Reactions   int
	Genes       int
	Boundary    int
	Exchanges   int
	Objective   string
}

// Name returns the model name given by WithName.
func (m *Model) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.name
}

// ReactionCount returns the number of reactions.
// Complexity: O(1).
func (m *Model) ReactionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.reactions)
}

// MetaboliteCount returns the number of metabolites.
// Complexity: O(1).
func (m *Model) MetaboliteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.metabolites)
}

// Stats returns a snapshot of catalog sizes and the objective ID.
//
// Complexity: O(R).
func (m *Model) Stats() *ModelStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &ModelStats{
		Metabolites: len(m.metabolites),
		Reactions:   len(m.reactions),
		Genes:       len(m.genes),
		Objective:   m.objective,
	}
	for _, r := range m.reactions {
		if r.IsBoundary() {
			s.Boundary++
		}
		if m.isExchangeLocked(r) {
			s.Exchanges++
		}
	}

	return s
}
