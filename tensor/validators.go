// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Single source of truth for the numeric checks applied to spike trains
//     and cost vectors before they reach a kernel.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     add their own context and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, O(n), and allocate nothing.

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFinite rejects a slice holding any NaN or ±Inf value.
// An empty slice is valid.
func ValidateFinite(xs []float64) error {
	if len(xs) == 0 {
		return nil
	}
	// NaN first: Min/Max are unspecified in its presence.
	if floats.HasNaN(xs) || math.IsInf(floats.Max(xs), 1) || math.IsInf(floats.Min(xs), -1) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateNonDecreasing rejects a slice with xs[i] < xs[i-1] for some i.
// Equal neighbours are allowed.
func ValidateNonDecreasing(xs []float64) error {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return validatorErrorf(fmt.Sprintf("ValidateNonDecreasing: index %d", i), ErrUnsorted)
		}
	}

	return nil
}
