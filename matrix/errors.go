// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (optionally wrapped with context via
// fmt.Errorf("ctx: %w", ErrX)); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(b) != a.Rows() in RowReduce.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilModel indicates that a nil *core.Model was passed into an adapter.
	ErrNilModel = errors.New("matrix: model is nil")

	// ErrEmptyModel indicates a model without metabolites or reactions.
	ErrEmptyModel = errors.New("matrix: model has no metabolites or reactions")

	// ErrInconsistent signals that a linear system A·x = b has no solution:
	// elimination produced a zero row in A with a non-zero right-hand side.
	ErrInconsistent = errors.New("matrix: inconsistent linear system")
)
