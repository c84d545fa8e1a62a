package spkd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metricspace/tensor"
	"gonum.org/v1/gonum/floats"
)

// MinSlideResolution is the smallest slide resolution that does not trigger
// a warning: finer grids add roughly span/res DP runs per pair.
const MinSlideResolution = 1e-4

// SlideResult reports the best alignment of two spike trains under
// time translation of the first one.
type SlideResult struct {
	Distance  float64   // minimum distance over all offsets
	Offset    float64   // offset added to the first train at the minimum (first one on ties)
	Distances []float64 // distance per offset, aligned with Offsets
	Offsets   []float64 // offsets tried, ascending, spaced by the resolution
}

// slideOffsets lists the translations of ti that bring it across tj:
// multiples of res from floor((min(tj)−max(ti)−res)/res)·res up to, but
// excluding, floor((max(tj)−min(ti)+res)/res)·res. Both trains must be
// non-empty.
func slideOffsets(ti, tj []float64, res float64) []float64 {
	lo := math.Floor((floats.Min(tj)-floats.Max(ti)-res)/res) * res
	hi := math.Floor((floats.Max(tj)-floats.Min(ti)+res)/res) * res
	n := int(math.Ceil((hi-lo)/res - 1e-9))
	offsets := make([]float64, n)
	for k := range offsets {
		offsets[k] = lo + float64(k)*res
	}

	return offsets
}

func validateResolution(res float64) error {
	if math.IsNaN(res) || math.IsInf(res, 0) || res <= 0 {
		return fmt.Errorf("resolution %v: %w", res, ErrBadResolution)
	}

	return nil
}

// SlideDistance computes the minimum Victor–Purpura distance between a
// translated by every offset in a res-spaced grid and b. It is useful when
// the trains were recorded over windows with different alignment.
//
// When either train is empty the distance is L_a + L_b and no offsets are
// tried.
//
// Errors:
//   - ErrBadResolution — res <= 0 or non-finite.
//   - ErrNonFinite / ErrNegativeCost — as for Distance.
func SlideDistance(a, b []float64, cost, res float64) (SlideResult, error) {
	if err := validateResolution(res); err != nil {
		return SlideResult{}, err
	}
	if err := validateCost(cost); err != nil {
		return SlideResult{}, err
	}
	if err := validateTrain(0, a, false); err != nil {
		return SlideResult{}, err
	}
	if err := validateTrain(1, b, false); err != nil {
		return SlideResult{}, err
	}
	if len(a) == 0 || len(b) == 0 {
		return SlideResult{Distance: float64(len(a) + len(b))}, nil
	}

	offsets := slideOffsets(a, b, res)
	dists := make([]float64, len(offsets))
	shifted := make([]float64, len(a))
	for k, s := range offsets {
		copy(shifted, a)
		floats.AddConst(s, shifted)
		dists[k] = distance(shifted, b, cost)
	}
	best := floats.MinIdx(dists)

	return SlideResult{
		Distance:  dists[best],
		Offset:    offsets[best],
		Distances: dists,
		Offsets:   offsets,
	}, nil
}

// SlideDistances is the tensor form of SlideDistance: D[i, j, k] is the
// minimum over translations of train i of its distance to train j at
// costs[k]. The pipeline (validation, empty-train policy, symmetry, clamp,
// worker pool) is the one of Distances and accepts the same options.
//
// Translating the first train of each pair is not symmetric in general;
// the upper-triangle value (i<j) is the one mirrored.
func SlideDistances(trains [][]float64, costs []float64, res float64, opts ...Option) (*tensor.Dense3, error) {
	if err := validateResolution(res); err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts...)
	if res < MinSlideResolution {
		cfg.logger.Warn("spkd: fine slide resolution drastically increases computation time",
			"res", res, "min", MinSlideResolution)
	}

	return assemble(trains, costs, &cfg, "slide distances", func(w *workspace, ti, tj, out []float64) error {
		return w.slidePair(ti, tj, res, out)
	})
}
