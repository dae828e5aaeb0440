// SPDX-License-Identifier: MIT

// Package matrix - row reduction of equality systems.
//
// Purpose:
//   - Turn a possibly rank-deficient system A·x = b into an equivalent one with
//     full row rank, as required by standard-form simplex solvers.
//   - Detect inconsistent systems (0 = c with c ≠ 0) up front.

package matrix

import (
	"fmt"
	"math"
)

const opRowReduce = "RowReduce"

// Reduced is the row-echelon form of [A|b] restricted to its non-zero rows.
//   - A has Rank rows and the same column count as the input.
//   - B has Rank entries.
//   - Pivots[i] is the pivot column of row i (strictly increasing).
type Reduced struct {
	A      *Dense
	B      []float64
	Rank   int
	Pivots []int
}

// RowReduce performs Gaussian elimination with partial pivoting on [A|b] and
// returns the equivalent full-row-rank system.
//
// Steps:
//  1. Validate: a non-nil (ErrNilMatrix), len(b) == a.Rows() (ErrDimensionMismatch),
//     all entries finite (ErrNaNInf).
//  2. For each column, pick the remaining row with the largest |a_ij| as pivot;
//     pivots with |a_ij| ≤ eps·max(1, max|A|) are treated as zero and skipped.
//  3. Eliminate below the pivot, carrying b along.
//  4. Rows left without a pivot must have b ≈ 0, otherwise ErrInconsistent.
//
// Options: WithEpsilon adjusts the relative pivot tolerance (DefaultEpsilon).
//
// Determinism:
//   - Fixed column-major pivot search; ties resolve to the lowest row index.
//
// Complexity: O(m·n·min(m,n)) time, O(m·n) space.
func RowReduce(a Matrix, b []float64, opts ...Option) (*Reduced, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opRowReduce, ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	if len(b) != m {
		return nil, fmt.Errorf("%s: len(b)=%d, rows=%d: %w", opRowReduce, len(b), m, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	// Work on a private flat copy.
	w := make([]float64, m*n)
	rhs := make([]float64, m)
	copy(rhs, b)
	if d, ok := a.(*Dense); ok {
		copy(w, d.data)
	} else {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				v, err := a.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", opRowReduce, err)
				}
				w[i*n+j] = v
			}
		}
	}

	scaleA, scaleB := 1.0, 1.0
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: %w", opRowReduce, ErrNaNInf)
		}
		scaleA = math.Max(scaleA, math.Abs(v))
	}
	for _, v := range rhs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: rhs: %w", opRowReduce, ErrNaNInf)
		}
		scaleB = math.Max(scaleB, math.Abs(v))
	}
	tolA := o.eps * scaleA
	tolB := o.eps * math.Max(scaleA, scaleB)

	var (
		r      int
		pivots = make([]int, 0, min(m, n))
	)
	for col := 0; col < n && r < m; col++ {
		// Partial pivoting: largest magnitude in column col among rows r..m-1.
		p, best := -1, tolA
		for i := r; i < m; i++ {
			if v := math.Abs(w[i*n+col]); v > best {
				p, best = i, v
			}
		}
		if p < 0 {
			continue
		}
		if p != r {
			swapRows(w, n, p, r)
			rhs[p], rhs[r] = rhs[r], rhs[p]
		}

		pv := w[r*n+col]
		for i := r + 1; i < m; i++ {
			f := w[i*n+col] / pv
			if f == 0 {
				continue
			}
			for k := col; k < n; k++ {
				w[i*n+k] -= f * w[r*n+k]
			}
			w[i*n+col] = 0
			rhs[i] -= f * rhs[r]
		}
		pivots = append(pivots, col)
		r++
	}

	for i := r; i < m; i++ {
		if math.Abs(rhs[i]) > tolB {
			return nil, fmt.Errorf("%s: row %d reduces to 0 = %g: %w", opRowReduce, i, rhs[i], ErrInconsistent)
		}
	}

	out := newDenseZeroOK(r, n)
	copy(out.data, w[:r*n])

	return &Reduced{A: out, B: rhs[:r:r], Rank: r, Pivots: pivots}, nil
}

// swapRows exchanges rows i and j of a flat row-major buffer with n columns.
func swapRows(w []float64, n, i, j int) {
	ri, rj := w[i*n:(i+1)*n], w[j*n:(j+1)*n]
	for k := 0; k < n; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
