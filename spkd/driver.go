package spkd

import (
	"math"

	"github.com/katalvlaran/metricspace/tensor"
	"golang.org/x/sync/errgroup"
)

// pairFunc computes the Q distances of one pair into out using the worker's
// own workspace.
type pairFunc func(w *workspace, ti, tj, out []float64) error

// pairCount returns the number of strictly-upper-triangular pairs, n(n-1)/2.
func pairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// rowStart returns the flat index of pair (i, i+1).
func rowStart(i, n int) int {
	return i * (2*n - i - 1) / 2
}

// pairAt decodes the flat index k ∈ [0, n(n-1)/2) into (i, j) with i<j,
// enumerating the strict upper triangle row by row.
//
// The closed form estimate is corrected by at most a step in either
// direction, so float rounding never yields a wrong row.
func pairAt(k, n int) (i, j int) {
	m := float64(2*n - 1)
	i = int(math.Floor((m - math.Sqrt(m*m-8*float64(k))) / 2))
	if i < 0 {
		i = 0
	}
	for i+1 < n-1 && rowStart(i+1, n) <= k {
		i++
	}
	for i > 0 && rowStart(i, n) > k {
		i--
	}

	return i, i + 1 + k - rowStart(i, n)
}

// iteratePairs fills d[i, j, :] for every i<j with fn.
//
// The flattened pair index is dealt to the workers in a strided fashion
// (worker w takes k = w, w+W, w+2W, ...), which interleaves long and short
// rows of the triangle. Each worker owns its workspace; fibers of d are
// disjoint per pair, so no locking is needed.
func iteratePairs(trains [][]float64, d *tensor.Dense3, cfg *Options, costs []float64, fn pairFunc) error {
	n := len(trains)
	total := pairCount(n)
	if total == 0 {
		return nil
	}
	workers := min(max(cfg.workers, 1), total)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			ws := newWorkspace(costs, cfg.scaledDiff)
			for k := w; k < total; k += workers {
				i, j := pairAt(k, n)
				if err := fn(ws, trains[i], trains[j], d.Fiber(i, j)); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
