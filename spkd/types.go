// Package spkd defines the result-shaping policies of the distance assembler.
package spkd

import "fmt"

// Symmetry controls how the strict upper triangle written by the pair driver
// is reflected onto the lower triangle of the N×N×Q tensor.
//
//   - Symmetric       — D[i,j,:] = D[j,i,:] = max of both positions.
//     Consumers may read either triangle.
//
//   - LowerTriangular — a bare swap of the first two axes: the computed
//     values end up at D[j,i,:] (j>i) and the upper triangle is zero.
type Symmetry int

const (
	// Symmetric mode: fully mirrored tensor.
	Symmetric Symmetry = iota

	// LowerTriangular mode: axis swap only, upper triangle left at zero.
	LowerTriangular
)

func (s Symmetry) String() string {
	switch s {
	case Symmetric:
		return "Symmetric"
	case LowerTriangular:
		return "LowerTriangular"
	default:
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
}

// EmptyPolicy controls what happens to spike trains without events.
//
//   - DropEmpty — empty trains are removed before computing; N shrinks and
//     the positions of the remaining trains shift down.
//
//   - KeepEmpty — positions are preserved; a pair with one empty train
//     gets max(L_i, L_j) at every cost, two empty trains get 0.
type EmptyPolicy int

const (
	// DropEmpty mode: filter empty trains out of the input.
	DropEmpty EmptyPolicy = iota

	// KeepEmpty mode: keep every input position.
	KeepEmpty
)

func (p EmptyPolicy) String() string {
	switch p {
	case DropEmpty:
		return "DropEmpty"
	case KeepEmpty:
		return "KeepEmpty"
	default:
		return fmt.Sprintf("EmptyPolicy(%d)", int(p))
	}
}
