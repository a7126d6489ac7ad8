// SPDX-License-Identifier: MIT

// Package kernel: sentinel error set and ordinal conversion.
// The record itself never validates its tensors (producers are trusted);
// the only locally detectable fault is an ordinal outside the enumeration.

package kernel

import (
	"errors"
	"fmt"
)

// ErrUnknownMarginalisation is returned by FromOrdinal for ordinals outside
// the defined range [OverAll, No].
var ErrUnknownMarginalisation = errors.New("kernel: unknown marginalisation ordinal")

// FromOrdinal converts a stored plain ordinal (such as Kernel.Marginal or
// Kernel.Cross) back into a Marginalisation, rejecting out-of-range values.
// Complexity: O(1).
func FromOrdinal(ordinal int) (Marginalisation, error) {
	m := Marginalisation(ordinal)
	if !m.Valid() {
		return 0, fmt.Errorf("FromOrdinal(%d): %w", ordinal, ErrUnknownMarginalisation)
	}
	return m, nil
}
