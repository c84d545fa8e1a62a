package spkd

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Exponent range of the default cost grid: 2^-4 ... 2^9 in half-octave steps.
const (
	defaultCostMinExp = -4
	defaultCostMaxExp = 9
	defaultCostSteps  = 2*(defaultCostMaxExp-defaultCostMinExp) + 1
)

// DefaultCosts returns the conventional cost grid for temporal-coding
// analyses: 0 followed by 2^e for e = -4, -3.5, ..., 9 (28 values, in
// inverse time units). q=0 measures pure spike-count differences; the
// largest value makes nearly every shift more expensive than delete+insert.
func DefaultCosts() []float64 {
	exps := floats.Span(make([]float64, defaultCostSteps), defaultCostMinExp, defaultCostMaxExp)
	costs := make([]float64, 0, defaultCostSteps+1)
	costs = append(costs, 0)
	for _, e := range exps {
		costs = append(costs, math.Pow(2, e))
	}

	return costs
}
