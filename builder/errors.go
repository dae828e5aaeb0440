// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach the method name with wrapf or %w.
//   • Option constructors (WithX) panic on meaningless input; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewReactions indicates a size parameter below the constructor minimum
// (e.g. LinearChain(n) with n < MinChainLength).
var ErrTooFewReactions = errors.New("builder: parameter too small")

// ErrMissingPrecursor indicates that a constructor extending a model did not
// find a metabolite it attaches to (e.g. Lycopene without CoreCarbon).
var ErrMissingPrecursor = errors.New("builder: missing precursor metabolite")

// ErrConstructFailed indicates that the model rejected an insertion
// (duplicate ID, unknown metabolite, invalid bounds) or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownModel indicates a Catalog lookup of an unregistered name.
var ErrUnknownModel = errors.New("builder: unknown model")

// wrapf returns "<method>: <what>: <err>" keeping both ErrConstructFailed and
// err matchable with errors.Is.
func wrapf(method, what string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", method, what, ErrConstructFailed, err)
}
