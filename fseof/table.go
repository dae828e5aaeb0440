// File: table.go
// Role: Step × reaction tables produced by the sweep.
//
// Missing data:
//   - A whole row is missing when its step was infeasible.
//   - A single cell is missing when the solver did not report that reaction
//     (FluxTable) or its variability solve failed (RangeTable).
//
// Both tables index reactions in sorted ID order and steps 0..Steps()-1.

package fseof

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/fseof/flux"
)

// FluxTable holds one point flux per (step, reaction).
type FluxTable struct {
	reactions []string
	index     map[string]int
	rows      [][]float64
}

// NewFluxTable creates a table with steps rows, all missing, over the given
// reactions (sorted and de-duplicated).
func NewFluxTable(reactions []string, steps int) *FluxTable {
	ids := uniqueSorted(reactions)
	t := &FluxTable{
		reactions: ids,
		index:     make(map[string]int, len(ids)),
		rows:      make([][]float64, steps),
	}
	for i, id := range ids {
		t.index[id] = i
	}

	return t
}

// SetRow records the fluxes of step. Reactions absent from fluxes (or NaN)
// become missing cells.
func (t *FluxTable) SetRow(step int, fluxes map[string]float64) error {
	if step < 0 || step >= len(t.rows) {
		return fmt.Errorf("fseof: FluxTable.SetRow(%d): step out of range [0, %d)", step, len(t.rows))
	}
	row := make([]float64, len(t.reactions))
	for i, id := range t.reactions {
		v, ok := fluxes[id]
		if !ok {
			v = math.NaN()
		}
		row[i] = v
	}
	t.rows[step] = row

	return nil
}

// Steps returns the number of rows, missing ones included.
func (t *FluxTable) Steps() int { return len(t.rows) }

// Reactions returns the column IDs in sorted order.
func (t *FluxTable) Reactions() []string { return append([]string(nil), t.reactions...) }

// Available reports whether step has a recorded row.
func (t *FluxTable) Available(step int) bool {
	return step >= 0 && step < len(t.rows) && t.rows[step] != nil
}

// At returns the flux of id at step; ok is false for missing data.
func (t *FluxTable) At(step int, id string) (v float64, ok bool) {
	j, known := t.index[id]
	if !known || !t.Available(step) {
		return 0, false
	}
	v = t.rows[step][j]

	return v, !math.IsNaN(v)
}

// Row returns a copy of the fluxes recorded at step, or nil when missing.
func (t *FluxTable) Row(step int) map[string]float64 {
	if !t.Available(step) {
		return nil
	}
	out := make(map[string]float64, len(t.reactions))
	for i, id := range t.reactions {
		if v := t.rows[step][i]; !math.IsNaN(v) {
			out[id] = v
		}
	}

	return out
}

// Series returns the available (step, flux) pairs of id in step order.
func (t *FluxTable) Series(id string) (steps []int, values []float64) {
	for s := range t.rows {
		if v, ok := t.At(s, id); ok {
			steps = append(steps, s)
			values = append(values, v)
		}
	}

	return steps, values
}

// Clone returns a deep copy.
func (t *FluxTable) Clone() *FluxTable {
	cp := &FluxTable{
		reactions: append([]string(nil), t.reactions...),
		index:     make(map[string]int, len(t.index)),
		rows:      make([][]float64, len(t.rows)),
	}
	for k, v := range t.index {
		cp.index[k] = v
	}
	for i, row := range t.rows {
		if row != nil {
			cp.rows[i] = append([]float64(nil), row...)
		}
	}

	return cp
}

// RangeTable holds one variability range per (step, reaction).
type RangeTable struct {
	reactions []string
	index     map[string]int
	cells     [][]flux.Range
	ok        [][]bool
}

// NewRangeTable creates a table with every cell missing.
func NewRangeTable(reactions []string, steps int) *RangeTable {
	ids := uniqueSorted(reactions)
	t := &RangeTable{
		reactions: ids,
		index:     make(map[string]int, len(ids)),
		cells:     make([][]flux.Range, steps),
		ok:        make([][]bool, steps),
	}
	for i, id := range ids {
		t.index[id] = i
	}
	for s := 0; s < steps; s++ {
		t.cells[s] = make([]flux.Range, len(ids))
		t.ok[s] = make([]bool, len(ids))
	}

	return t
}

// Set records range r for (step, id).
func (t *RangeTable) Set(step int, id string, r flux.Range) error {
	j, known := t.index[id]
	if !known || step < 0 || step >= len(t.cells) {
		return fmt.Errorf("fseof: RangeTable.Set(%d, %q): out of range", step, id)
	}
	t.cells[step][j], t.ok[step][j] = r, true

	return nil
}

// Steps returns the number of rows.
func (t *RangeTable) Steps() int { return len(t.cells) }

// Reactions returns the column IDs in sorted order.
func (t *RangeTable) Reactions() []string { return append([]string(nil), t.reactions...) }

// At returns the range of id at step; ok is false for missing cells.
func (t *RangeTable) At(step int, id string) (r flux.Range, ok bool) {
	j, known := t.index[id]
	if !known || step < 0 || step >= len(t.cells) {
		return flux.Range{}, false
	}

	return t.cells[step][j], t.ok[step][j]
}

// Series returns the available ranges of id in step order.
func (t *RangeTable) Series(id string) (steps []int, ranges []flux.Range) {
	for s := range t.cells {
		if r, ok := t.At(s, id); ok {
			steps = append(steps, s)
			ranges = append(ranges, r)
		}
	}

	return steps, ranges
}

// Clone returns a deep copy.
func (t *RangeTable) Clone() *RangeTable {
	cp := NewRangeTable(t.reactions, len(t.cells))
	for s := range t.cells {
		copy(cp.cells[s], t.cells[s])
		copy(cp.ok[s], t.ok[s])
	}

	return cp
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
