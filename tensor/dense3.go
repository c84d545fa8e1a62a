// SPDX-License-Identifier: MIT

// Package tensor - 3-D row-major storage, axis views and axis operations.
//
// Layout:
//   - offset(i, j, k) = (i*d1 + j)*d2 + k; the last axis is contiguous.
//   - Plane(i) is the contiguous d1×d2 block at i; Fiber(i, j) is the
//     contiguous d2 run at (i, j).
//
// Complexity quicksheet:
//   - NewDense3: O(n) zero-init; At/Set/Plane/Fiber: O(1);
//     SwapAxes01/MaxSwap01/ClampMin/Clone: O(n).

package tensor

import (
	"fmt"
)

// dense3Errorf wraps an error with a uniform Dense3 context and callsite indices.
func dense3Errorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Dense3.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// Dense3 is a row-major d0×d1×d2 float64 tensor.
type Dense3 struct {
	d0, d1, d2 int       // extents, all >= 0
	data       []float64 // len == d0*d1*d2
}

// NewDense3 creates a zero-filled d0×d1×d2 tensor.
// Zero extents are legal; negative extents yield ErrBadShape.
func NewDense3(d0, d1, d2 int) (*Dense3, error) {
	if d0 < 0 || d1 < 0 || d2 < 0 {
		return nil, dense3Errorf("New", d0, d1, d2, ErrBadShape)
	}

	return &Dense3{d0: d0, d1: d1, d2: d2, data: make([]float64, d0*d1*d2)}, nil
}

// Shape returns the three extents.
func (t *Dense3) Shape() (d0, d1, d2 int) { return t.d0, t.d1, t.d2 }

// Len returns the total number of elements.
func (t *Dense3) Len() int { return len(t.data) }

// Raw exposes the row-major backing slice.
func (t *Dense3) Raw() []float64 { return t.data }

func (t *Dense3) offset(i, j, k int) (int, error) {
	if i < 0 || i >= t.d0 || j < 0 || j >= t.d1 || k < 0 || k >= t.d2 {
		return 0, ErrOutOfRange
	}

	return (i*t.d1+j)*t.d2 + k, nil
}

// At returns the value at (i, j, k) or a wrapped ErrOutOfRange.
func (t *Dense3) At(i, j, k int) (float64, error) {
	off, err := t.offset(i, j, k)
	if err != nil {
		return 0, dense3Errorf(ctxAt, i, j, k, err)
	}

	return t.data[off], nil
}

// Set stores v at (i, j, k) or returns a wrapped ErrOutOfRange.
func (t *Dense3) Set(i, j, k int, v float64) error {
	off, err := t.offset(i, j, k)
	if err != nil {
		return dense3Errorf(ctxSet, i, j, k, err)
	}
	t.data[off] = v

	return nil
}

// Plane returns a no-copy view of the d1×d2 block at index i of axis 0.
// It panics when i is out of range.
func (t *Dense3) Plane(i int) []float64 {
	n := t.d1 * t.d2
	return t.data[i*n : (i+1)*n : (i+1)*n]
}

// Fiber returns a no-copy view of the d2 elements at (i, j).
// It panics when (i, j) is out of range.
func (t *Dense3) Fiber(i, j int) []float64 {
	off := (i*t.d1 + j) * t.d2
	return t.data[off : off+t.d2 : off+t.d2]
}

// Fill sets every element to v.
func (t *Dense3) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Reshape changes the shape to d0×d1×d2 and zeroes every element, reusing
// the backing buffer when its capacity allows.
func (t *Dense3) Reshape(d0, d1, d2 int) error {
	if d0 < 0 || d1 < 0 || d2 < 0 {
		return dense3Errorf(ctxReshape, d0, d1, d2, ErrBadShape)
	}
	t.data = resize(t.data, d0*d1*d2)
	t.d0, t.d1, t.d2 = d0, d1, d2

	return nil
}

// Clone returns a deep copy.
func (t *Dense3) Clone() *Dense3 {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return &Dense3{d0: t.d0, d1: t.d1, d2: t.d2, data: cp}
}

// SwapAxes01 returns a new tensor u with u[j, i, k] = t[i, j, k].
// Implementation:
//   - Stage 1: allocate a d1×d0×d2 destination.
//   - Stage 2: copy each contiguous fiber (i, j) into (j, i).
//
// Complexity: Time O(n), Space O(n).
func (t *Dense3) SwapAxes01() *Dense3 {
	u := &Dense3{d0: t.d1, d1: t.d0, d2: t.d2, data: make([]float64, len(t.data))}
	for i := 0; i < t.d0; i++ {
		for j := 0; j < t.d1; j++ {
			copy(u.Fiber(j, i), t.Fiber(i, j))
		}
	}

	return u
}

// MaxSwap01 merges t with its (0,1)-axis transpose in place:
// t[i, j, k] = t[j, i, k] = max(t[i, j, k], t[j, i, k]).
// The first two extents must be equal, otherwise ErrDimensionMismatch.
//
// Complexity: Time O(n), Space O(1).
func (t *Dense3) MaxSwap01() error {
	if t.d0 != t.d1 {
		return dense3Errorf("MaxSwap01", t.d0, t.d1, t.d2, ErrDimensionMismatch)
	}
	for i := 0; i < t.d0; i++ {
		for j := i + 1; j < t.d1; j++ {
			upper, lower := t.Fiber(i, j), t.Fiber(j, i)
			for k := range upper {
				v := max(upper[k], lower[k])
				upper[k], lower[k] = v, v
			}
		}
	}

	return nil
}

// ClampMin replaces every element smaller than lo with lo.
func (t *Dense3) ClampMin(lo float64) {
	for i, v := range t.data {
		if v < lo {
			t.data[i] = lo
		}
	}
}
