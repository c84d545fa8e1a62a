// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." for easy grepping. Methods wrap
// these with context via fmt.Errorf("...: %w", ErrX); callers match with
// errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested extent is negative.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes in a broadcast
	// or an axis operation that requires equal extents.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrUnsorted signals a sequence that is not monotonically non-decreasing.
	ErrUnsorted = errors.New("tensor: sequence is not non-decreasing")

	// ErrNilTensor indicates that a nil receiver or argument was used.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
