// SPDX-License-Identifier: MIT
// Package: fseof/builder

package builder

import "fmt"

func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewReactions)
	}

	return nil
}
