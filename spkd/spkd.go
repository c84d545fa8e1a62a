package spkd

import (
	"fmt"
	"time"

	"github.com/katalvlaran/metricspace/tensor"
)

// Distances computes the Victor–Purpura distance tensor D of shape
// (N, N, Q) for the given spike trains and cost vector, where N is the
// number of trains left after the empty-train policy and Q = len(costs).
//
// D[i, j, k] is the minimum total cost of turning train i into train j
// with unit-cost insertions/deletions and shifts costing costs[k]·|Δt|.
//
// Steps:
//  1. Validate inputs (finite times, finite non-negative costs; order
//     under WithOrderCheck).
//  2. Apply the empty-train policy (DropEmpty by default).
//  3. Allocate a zeroed N×N×Q tensor and fill the strict upper triangle.
//  4. Mirror per the symmetry mode (Symmetric by default).
//  5. Clamp negatives to zero.
//
// An empty collection yields a 0×0×Q tensor; an empty cost vector yields
// N×N×0. Input slices are read-only and never retained.
//
// Example:
//
//	d, err := spkd.Distances(trains, spkd.DefaultCosts(), spkd.WithWorkers(4))
//	v, _ := d.At(0, 1, 3) // distance of trains 0 and 1 at the 4th cost
func Distances(trains [][]float64, costs []float64, opts ...Option) (*tensor.Dense3, error) {
	cfg := gatherOptions(opts...)

	return assemble(trains, costs, &cfg, "distances", func(w *workspace, ti, tj, out []float64) error {
		return w.pair(ti, tj, out)
	})
}

// assemble runs the shared validate → filter → drive → mirror → clamp pipeline.
func assemble(trains [][]float64, costs []float64, cfg *Options, op string, fn pairFunc) (*tensor.Dense3, error) {
	start := time.Now()
	if cfg.validate {
		if err := validateCosts(costs); err != nil {
			return nil, err
		}
		if err := validateTrains(trains, cfg.orderCheck); err != nil {
			return nil, err
		}
	} else if cfg.orderCheck {
		if err := validateTrainsOrder(trains); err != nil {
			return nil, err
		}
	}

	kept := trains
	if cfg.emptyPolicy == DropEmpty {
		kept = dropEmpty(trains)
	}
	n, nq := len(kept), len(costs)

	d, err := tensor.NewDense3(n, n, nq)
	if err != nil {
		return nil, fmt.Errorf("spkd: %s: %w", op, err)
	}
	if nq > 0 {
		if err = iteratePairs(kept, d, cfg, costs, fn); err != nil {
			return nil, fmt.Errorf("spkd: %s: %w", op, err)
		}
	}

	switch cfg.symmetry {
	case Symmetric:
		if err = d.MaxSwap01(); err != nil {
			return nil, fmt.Errorf("spkd: %s: %w", op, err)
		}
	case LowerTriangular:
		d = d.SwapAxes01()
	}
	d.ClampMin(0)

	cfg.logger.Debug("spkd: distance tensor computed",
		"op", op,
		"trains", n,
		"dropped", len(trains)-n,
		"costs", nq,
		"pairs", pairCount(n),
		"workers", cfg.workers,
		"symmetry", cfg.symmetry.String(),
		"elapsed", time.Since(start),
	)

	return d, nil
}

// dropEmpty returns the non-empty trains in input order. The result shares
// the inner slices with the input.
func dropEmpty(trains [][]float64) [][]float64 {
	kept := make([][]float64, 0, len(trains))
	for _, tr := range trains {
		if len(tr) > 0 {
			kept = append(kept, tr)
		}
	}

	return kept
}
