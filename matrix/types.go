// SPDX-License-Identifier: MIT

package matrix

// Matrix is a read-only two-dimensional view of float64 values. Dense
// implements it; so can sparse or lazily computed systems handed to RowReduce.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
