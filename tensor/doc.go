// Package tensor provides the dense, row-major float64 storage used by the
// spike-train distance kernels.
//
// Two concrete types are offered:
//
//   - Dense  — an r×c matrix (OuterDiff of two spike trains).
//   - Dense3 — a d0×d1×d2 tensor (ScaledDiff, DP score buffers and the
//     final N×N×Q distance tensor).
//
// Both keep a flat backing slice with the explicit offset formula
// (row-major, last axis contiguous), so hot kernels may walk Raw() directly
// while the public surface (At/Set) stays bounds-checked and error-returning.
//
// Only the two broadcasts needed by the distance kernels are provided:
//
//	OuterAbsDiff: (L_i×1) against (1×L_j)        -> |a[i] - b[j]|
//	ScaleOuter:   (Q×1×1) against (1×L_i×L_j)    -> q[k] * m[i,j]
//
// Zero-length axes are legal everywhere: an N×N×0 tensor is a well-formed
// result for an empty cost vector.
package tensor
