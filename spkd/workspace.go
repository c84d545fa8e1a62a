package spkd

import (
	"fmt"

	"github.com/katalvlaran/metricspace/tensor"
	"gonum.org/v1/gonum/floats"
)

// workspace holds the per-worker transient tensors. Each worker owns one and
// reuses it for every pair it computes; buffers only grow.
type workspace struct {
	costs      []float64
	scaledDiff bool

	score  *tensor.Dense3 // Q×(L_i+1)×(L_j+1)
	outer  *tensor.Dense  // L_i×L_j, only with scaledDiff
	scaled *tensor.Dense3 // Q×L_i×L_j, only with scaledDiff

	// slide scratch
	shifted []float64
	trial   []float64
}

func newWorkspace(costs []float64, scaledDiff bool) *workspace {
	w := &workspace{
		costs:      costs,
		scaledDiff: scaledDiff,
		score:      &tensor.Dense3{},
	}
	if scaledDiff {
		w.outer = &tensor.Dense{}
		w.scaled = &tensor.Dense3{}
	}

	return w
}

// pair writes the Victor–Purpura distances between ti and tj, one per cost,
// into out (len(out) == len(costs)).
func (w *workspace) pair(ti, tj, out []float64) error {
	li, lj := len(ti), len(tj)
	switch {
	case li == 0 && lj == 0:
		clear(out)
		return nil
	case li == 0 || lj == 0:
		// Pure deletion/insertion, independent of the cost.
		fill(out, float64(max(li, lj)))
		return nil
	}

	if err := w.score.Reshape(len(w.costs), li+1, lj+1); err != nil {
		return fmt.Errorf("pair %dx%d: %w", li, lj, err)
	}
	initScores(w.score)

	if w.scaledDiff {
		if err := w.scale(ti, tj); err != nil {
			return err
		}
		fillScores(w.score, w.scaled)
	} else {
		fillScoresFolded(w.score, ti, tj, w.costs)
	}
	finalScores(w.score, out)

	return nil
}

// scale materialises OuterDiff and ScaledDiff for the pair.
func (w *workspace) scale(ti, tj []float64) error {
	li, lj := len(ti), len(tj)
	if err := w.outer.Reshape(li, lj); err != nil {
		return fmt.Errorf("pair %dx%d: %w", li, lj, err)
	}
	if err := tensor.OuterAbsDiff(w.outer, ti, tj); err != nil {
		return fmt.Errorf("pair %dx%d: %w", li, lj, err)
	}
	if err := w.scaled.Reshape(len(w.costs), li, lj); err != nil {
		return fmt.Errorf("pair %dx%d: %w", li, lj, err)
	}
	if err := tensor.ScaleOuter(w.scaled, w.costs, w.outer); err != nil {
		return fmt.Errorf("pair %dx%d: %w", li, lj, err)
	}

	return nil
}

// slidePair writes into out, per cost, the minimum distance between ti
// translated by each offset in slideOffsets(ti, tj, res) and tj.
func (w *workspace) slidePair(ti, tj []float64, res float64, out []float64) error {
	if len(ti) == 0 || len(tj) == 0 {
		return w.pair(ti, tj, out)
	}

	offsets := slideOffsets(ti, tj, res)
	w.shifted = grow(w.shifted, len(ti))
	w.trial = grow(w.trial, len(out))
	for n, s := range offsets {
		copy(w.shifted, ti)
		floats.AddConst(s, w.shifted)
		if err := w.pair(w.shifted, tj, w.trial); err != nil {
			return err
		}
		if n == 0 {
			copy(out, w.trial)
			continue
		}
		for q, v := range w.trial {
			out[q] = min(out[q], v)
		}
	}

	return nil
}

func fill(xs []float64, v float64) {
	for i := range xs {
		xs[i] = v
	}
}

// grow returns buf resliced to n, reallocating when cap(buf) < n.
func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}
