// SPDX-License-Identifier: MIT

// Package matrix - stoichiometric matrix adapter for core.Model.
//
// Layout:
//   - rows    = metabolites, sorted by ID (MetaboliteIndex).
//   - columns = reactions, sorted by ID (ReactionIndex).
//   - entry   = stoichiometric coefficient (negative consumed, positive produced).
//
// Determinism:
//   - Both axes follow the sorted ID order of core.Model, so two builds of an
//     unchanged model are bit-identical.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fseof/core"
)

// StoichiometricMatrix is the metabolite × reaction matrix S of a model.
type StoichiometricMatrix struct {
	Mat             *Dense
	MetaboliteIndex map[string]int
	ReactionIndex   map[string]int
	Metabolites     []string
	Reactions       []string
}

// NewStoichiometricMatrix builds S from m.
//
// Steps:
//  1. Validate: m non-nil (ErrNilModel) with at least one reaction (ErrEmptyModel).
//  2. Index metabolites and reactions by sorted ID.
//  3. Fill coefficients column by column.
//
// A model without metabolites yields a 0×R matrix.
// Complexity: O(M·R) memory, O(nnz) fill.
func NewStoichiometricMatrix(m *core.Model, opts ...Option) (*StoichiometricMatrix, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	rxns := m.Reactions()
	if len(rxns) == 0 {
		return nil, ErrEmptyModel
	}
	mets := m.MetaboliteIDs()

	sm := &StoichiometricMatrix{
		MetaboliteIndex: make(map[string]int, len(mets)),
		ReactionIndex:   make(map[string]int, len(rxns)),
		Metabolites:     mets,
		Reactions:       make([]string, len(rxns)),
	}
	for i, id := range mets {
		sm.MetaboliteIndex[id] = i
	}
	for j, r := range rxns {
		sm.ReactionIndex[r.ID] = j
		sm.Reactions[j] = r.ID
	}

	if len(mets) == 0 {
		sm.Mat = newDenseZeroOK(0, len(rxns))
		return sm, nil
	}
	mat, err := NewDense(len(mets), len(rxns), opts...)
	if err != nil {
		return nil, fmt.Errorf("NewStoichiometricMatrix: %w", err)
	}
	for j, r := range rxns {
		for metID, coef := range r.Stoichiometry {
			if err = mat.Set(sm.MetaboliteIndex[metID], j, coef); err != nil {
				return nil, fmt.Errorf("NewStoichiometricMatrix(%q): %w", r.ID, err)
			}
		}
	}
	sm.Mat = mat

	return sm, nil
}

// Column returns a copy of the coefficients of reaction id (one per metabolite).
func (s *StoichiometricMatrix) Column(id string) ([]float64, error) {
	j, ok := s.ReactionIndex[id]
	if !ok {
		return nil, fmt.Errorf("Column(%q): %w", id, core.ErrReactionNotFound)
	}
	out := make([]float64, s.Mat.Rows())
	for i := range out {
		out[i] = s.Mat.data[i*s.Mat.c+j]
	}

	return out, nil
}

// Balance returns the per-metabolite net production S·v for the flux vector
// fluxes (missing reactions count as zero flux). A steady-state distribution
// has every entry ≈ 0.
//
// Complexity: O(M·R).
func (s *StoichiometricMatrix) Balance(fluxes map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(s.Metabolites))
	for i, met := range s.Metabolites {
		var sum float64
		for j, rxn := range s.Reactions {
			sum += s.Mat.data[i*s.Mat.c+j] * fluxes[rxn]
		}
		out[met] = sum
	}

	return out
}

// MaxImbalance returns max |(S·v)_i| over all metabolites, or 0 for an empty S.
func (s *StoichiometricMatrix) MaxImbalance(fluxes map[string]float64) float64 {
	var worst float64
	for _, v := range s.Balance(fluxes) {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst
}
