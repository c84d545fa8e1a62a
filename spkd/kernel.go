package spkd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metricspace/tensor"
)

// Victor–Purpura pairwise DP kernel
//
// Description:
//
//	For two spike trains t_i (length L_i) and t_j (length L_j) and Q cost
//	values, the score buffer S has shape Q×(L_i+1)×(L_j+1). Plane q holds
//	the edit-distance DP for cost q[q]; planes are independent.
//
// Algorithm Outline (per plane):
//  1. Boundary:
//     S[0][0] = 0
//     S[a][0] = a  for a=1..L_i   (delete every spike of t_i)
//     S[0][b] = b  for b=1..L_j   (insert every spike of t_j)
//  2. For a = 1..L_i, b = 1..L_j (row-major):
//     del   = S[a-1][b]   + 1
//     ins   = S[a][b-1]   + 1
//     shift = S[a-1][b-1] + q·|t_i[a-1] − t_j[b-1]|
//     S[a][b] = min(del, ins, shift)
//  3. distance = S[L_i][L_j].
//
// Traversal: q-outer, so each plane is walked over contiguous memory with
// the previous row and the current row as adjacent slices.
//
// Complexity:
//
//	Time   = O(Q·L_i·L_j)
//	Memory = O(Q·L_i·L_j) for S (plus the same again with ScaledDiff)

// initScores writes the boundary rows and columns of every plane of s.
// The interior is left untouched; the kernels overwrite it.
func initScores(s *tensor.Dense3) {
	nq, rows, cols := s.Shape()
	for q := 0; q < nq; q++ {
		p := s.Plane(q)
		p[0] = 0
		for b := 1; b < cols; b++ {
			p[b] = float64(b)
		}
		for a := 1; a < rows; a++ {
			p[a*cols] = float64(a)
		}
	}
}

// fillScores runs the recurrence over a materialised ScaledDiff sd
// (shape Q×L_i×L_j) into s (shape Q×(L_i+1)×(L_j+1)).
// Panics when the shapes do not reconcile.
func fillScores(s, sd *tensor.Dense3) {
	nq, rows, cols := s.Shape()
	dq, li, lj := sd.Shape()
	if dq != nq || li != rows-1 || lj != cols-1 {
		panic(fmt.Sprintf("spkd: score buffer %dx%dx%d does not match scaled diff %dx%dx%d",
			nq, rows, cols, dq, li, lj))
	}

	for q := 0; q < nq; q++ {
		p, d := s.Plane(q), sd.Plane(q)
		for a := 1; a < rows; a++ {
			prev := p[(a-1)*cols : a*cols]
			curr := p[a*cols : (a+1)*cols]
			shift := d[(a-1)*lj : a*lj]
			for b := 1; b < cols; b++ {
				curr[b] = min3(prev[b]+1, curr[b-1]+1, prev[b-1]+shift[b-1])
			}
		}
	}
}

// fillScoresFolded runs the recurrence with the cost folded into the shift
// term, q[k]·|ti[a-1] − tj[b-1]|, so no ScaledDiff tensor is needed.
// Panics when the shapes do not reconcile.
func fillScoresFolded(s *tensor.Dense3, ti, tj, costs []float64) {
	nq, rows, cols := s.Shape()
	if nq != len(costs) || rows != len(ti)+1 || cols != len(tj)+1 {
		panic(fmt.Sprintf("spkd: score buffer %dx%dx%d does not match trains %d, %d and %d costs",
			nq, rows, cols, len(ti), len(tj), len(costs)))
	}

	for q, cost := range costs {
		p := s.Plane(q)
		for a := 1; a < rows; a++ {
			prev := p[(a-1)*cols : a*cols]
			curr := p[a*cols : (a+1)*cols]
			t := ti[a-1]
			for b := 1; b < cols; b++ {
				// float64() keeps the product rounded (no FMA), matching fillScores.
				curr[b] = min3(prev[b]+1, curr[b-1]+1, prev[b-1]+float64(cost*math.Abs(t-tj[b-1])))
			}
		}
	}
}

// finalScores copies S[q, L_i, L_j] for every q into out.
func finalScores(s *tensor.Dense3, out []float64) {
	_, rows, cols := s.Shape()
	last := rows*cols - 1
	for q := range out {
		out[q] = s.Plane(q)[last]
	}
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
