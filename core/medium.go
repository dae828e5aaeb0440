// File: medium.go
// Role: Growth medium configuration on top of exchange bounds.
//
// Convention: an exchange reaction consumes its single extracellular
// metabolite in the forward direction ("glc__D_e <=>"), so uptake is negative
// flux and the medium is expressed through the exchange lower bound.

package core

import (
	"fmt"
	"math"
	"sort"
)

// SetMedium opens uptake for every listed exchange and closes all others.
//
// Steps:
//  1. Validate: every key is a known exchange (ErrReactionNotFound /
//     ErrNotExchange); every uptake is finite and ≥ 0 (ErrInvalidBounds);
//     no unlisted exchange forces uptake with upper < 0 (ErrInvalidBounds),
//     since closing it would leave lower > upper.
//  2. For listed exchanges set lower = −uptake (upper is raised to at least
//     the new lower bound).
//  3. For every other exchange with lower < 0 set lower = 0.
//
// Validation happens before any mutation, so a failed call leaves the model untouched.
// Complexity: O(R).
func (m *Model) SetMedium(medium map[string]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	normalized := make(map[string]float64, len(medium))
	for id, uptake := range medium {
		id = normalizeID(id)
		r, ok := m.reactions[id]
		if !ok {
			return fmt.Errorf("SetMedium(%q): %w", id, ErrReactionNotFound)
		}
		if !m.isExchangeLocked(r) {
			return fmt.Errorf("SetMedium(%q): %w", id, ErrNotExchange)
		}
		if math.IsNaN(uptake) || math.IsInf(uptake, 0) || uptake < 0 {
			return fmt.Errorf("SetMedium(%q, %g): %w", id, uptake, ErrInvalidBounds)
		}
		normalized[id] = uptake
	}
	for id, r := range m.reactions {
		if _, listed := normalized[id]; listed || !m.isExchangeLocked(r) {
			continue
		}
		if r.Upper < 0 {
			return fmt.Errorf("SetMedium: %q forces uptake [%g, %g]: %w", id, r.Lower, r.Upper, ErrInvalidBounds)
		}
	}

	for id, r := range m.reactions {
		if !m.isExchangeLocked(r) {
			continue
		}
		if uptake, ok := normalized[id]; ok {
			r.Lower = -uptake
			if r.Upper < r.Lower {
				r.Upper = r.Lower
			}
			continue
		}
		if r.Lower < 0 {
			r.Lower = 0
		}
	}

	return nil
}

// Medium returns the exchanges that currently allow uptake, mapped to the
// maximal uptake rate (−lower bound).
func (m *Model) Medium() map[string]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]float64)
	for id, r := range m.reactions {
		if m.isExchangeLocked(r) && r.Lower < 0 {
			out[id] = -r.Lower
		}
	}

	return out
}

// MediumIDs returns the sorted keys of Medium().
func (m *Model) MediumIDs() []string {
	med := m.Medium()
	ids := make([]string, 0, len(med))
	for id := range med {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
