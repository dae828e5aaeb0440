// File: methods_bounds.go
// Role: Flux bounds and objective mutation, including the scoped
//       "set, run, restore" helpers used by scans.
// Determinism:
//   - Restores write back the exact float64 values captured before mutation,
//     so bounds are bit-identical after a scoped call.
// Concurrency:
//   - Each getter/setter takes mu; scoped helpers do not hold mu while the
//     callback runs (the callback typically reads the model through a solver).

package core

import (
	"fmt"
	"math"
	"sync"
)

// validateBounds rejects NaN bounds and lower > upper.
func validateBounds(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return ErrInvalidBounds
	}
	if lo > hi {
		return ErrInvalidBounds
	}

	return nil
}

// Bounds returns the (lower, upper) flux bounds of reaction id.
func (m *Model) Bounds(id string) (lo, hi float64, err error) {
	id = normalizeID(id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reactions[id]
	if !ok {
		return 0, 0, fmt.Errorf("Bounds(%q): %w", id, ErrReactionNotFound)
	}

	return r.Lower, r.Upper, nil
}

// SetBounds assigns both bounds of reaction id.
// Errors: ErrReactionNotFound, ErrInvalidBounds (NaN or lo > hi).
func (m *Model) SetBounds(id string, lo, hi float64) error {
	id = normalizeID(id)
	if err := validateBounds(lo, hi); err != nil {
		return fmt.Errorf("SetBounds(%q, %g, %g): %w", id, lo, hi, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reactions[id]
	if !ok {
		return fmt.Errorf("SetBounds(%q): %w", id, ErrReactionNotFound)
	}
	r.Lower, r.Upper = lo, hi

	return nil
}

// SetLower assigns the lower bound, keeping the current upper bound.
func (m *Model) SetLower(id string, lo float64) error {
	_, hi, err := m.Bounds(id)
	if err != nil {
		return err
	}

	return m.SetBounds(id, lo, hi)
}

// SetUpper assigns the upper bound, keeping the current lower bound.
func (m *Model) SetUpper(id string, hi float64) error {
	lo, _, err := m.Bounds(id)
	if err != nil {
		return err
	}

	return m.SetBounds(id, lo, hi)
}

// WithBounds temporarily sets the bounds of reaction id to [lo, hi], runs fn,
// and restores the previous bounds on every exit path, panics included.
//
// Steps:
//  1. Capture the current bounds (ErrReactionNotFound if missing).
//  2. Apply [lo, hi] (ErrInvalidBounds on NaN or lo > hi; nothing to restore).
//  3. Defer restoration, then call fn.
//
// The error returned by fn wins over a restoration error.
func (m *Model) WithBounds(id string, lo, hi float64, fn func() error) (err error) {
	prevLo, prevHi, err := m.Bounds(id)
	if err != nil {
		return err
	}
	if err = m.SetBounds(id, lo, hi); err != nil {
		return err
	}
	defer func() {
		if rerr := m.SetBounds(id, prevLo, prevHi); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return fn()
}

// BoundsSnapshot maps reaction ID to its (lower, upper) pair.
type BoundsSnapshot map[string][2]float64

// SnapshotBounds captures the bounds of every reaction.
// Complexity: O(R).
func (m *Model) SnapshotBounds() BoundsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := make(BoundsSnapshot, len(m.reactions))
	for id, r := range m.reactions {
		snap[id] = [2]float64{r.Lower, r.Upper}
	}

	return snap
}

// RestoreBounds writes back every pair recorded in snap. Reactions added after
// the snapshot keep their bounds; reactions removed since are skipped.
func (m *Model) RestoreBounds(snap BoundsSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, b := range snap {
		if r, ok := m.reactions[id]; ok {
			r.Lower, r.Upper = b[0], b[1]
		}
	}
}

// SetObjective designates reaction id as the primary objective with the given sense.
func (m *Model) SetObjective(id string, sense Sense) error {
	id = normalizeID(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reactions[id]; !ok {
		return fmt.Errorf("SetObjective(%q): %w", id, ErrReactionNotFound)
	}
	m.objective, m.sense = id, sense

	return nil
}

// Objective returns the objective reaction ID and sense.
// Errors: ErrNoObjective when none is set.
func (m *Model) Objective() (string, Sense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.objective == "" {
		return "", Maximize, ErrNoObjective
	}

	return m.objective, m.sense, nil
}

// WithObjective temporarily replaces the objective, runs fn and restores the
// previous objective (possibly "none") on every exit path.
func (m *Model) WithObjective(id string, sense Sense, fn func() error) error {
	m.mu.RLock()
	prevID, prevSense := m.objective, m.sense
	m.mu.RUnlock()

	if err := m.SetObjective(id, sense); err != nil {
		return err
	}
	defer func() {
		m.mu.Lock()
		m.objective, m.sense = prevID, prevSense
		m.mu.Unlock()
	}()

	return fn()
}

// Acquire marks the model as held by a scan. The returned release function is
// idempotent. A second Acquire before release fails with ErrModelBusy; callers
// that need concurrent scans work on Clone()s instead.
func (m *Model) Acquire() (release func(), err error) {
	if !m.busy.CompareAndSwap(false, true) {
		return nil, ErrModelBusy
	}
	var once sync.Once

	return func() { once.Do(func() { m.busy.Store(false) }) }, nil
}
