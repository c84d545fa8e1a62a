// SPDX-License-Identifier: MIT

// Package tensor - the two broadcasts needed by the distance kernels.
//
// Both write into a caller-owned destination so that per-worker scratch
// tensors can be reused across spike-train pairs (see Reshape).

package tensor

import (
	"fmt"
	"math"
)

// OuterAbsDiff fills dst (len(a)×len(b)) with |a[i] - b[j]|, broadcasting a
// as a column (L_i×1) against b as a row (1×L_j).
// Returns ErrDimensionMismatch when dst has the wrong shape.
//
// Complexity: Time O(len(a)*len(b)), no allocations.
func OuterAbsDiff(dst *Dense, a, b []float64) error {
	if dst == nil {
		return fmt.Errorf("OuterAbsDiff: %w", ErrNilTensor)
	}
	if dst.r != len(a) || dst.c != len(b) {
		return fmt.Errorf("OuterAbsDiff: dst %dx%d, operands %d and %d: %w",
			dst.r, dst.c, len(a), len(b), ErrDimensionMismatch)
	}
	for i, x := range a {
		row := dst.Row(i)
		for j, y := range b {
			row[j] = math.Abs(x - y)
		}
	}

	return nil
}

// ScaleOuter fills dst (len(q)×m.Rows×m.Cols) with q[k]*m[i,j], broadcasting
// q as Q×1×1 against m as 1×L_i×L_j.
// Returns ErrDimensionMismatch when dst has the wrong shape.
//
// Complexity: Time O(len(q)*|m|), no allocations.
func ScaleOuter(dst *Dense3, q []float64, m *Dense) error {
	if dst == nil || m == nil {
		return fmt.Errorf("ScaleOuter: %w", ErrNilTensor)
	}
	if dst.d0 != len(q) || dst.d1 != m.r || dst.d2 != m.c {
		return fmt.Errorf("ScaleOuter: dst %dx%dx%d, operands %d and %dx%d: %w",
			dst.d0, dst.d1, dst.d2, len(q), m.r, m.c, ErrDimensionMismatch)
	}
	for k, s := range q {
		plane := dst.Plane(k)
		for idx, v := range m.data {
			plane[idx] = s * v
		}
	}

	return nil
}
