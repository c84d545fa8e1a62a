package spkd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metricspace/tensor"
	"gonum.org/v1/gonum/floats"
)

// validateCosts rejects non-finite or negative cost parameters.
func validateCosts(costs []float64) error {
	if err := tensor.ValidateFinite(costs); err != nil {
		return fmt.Errorf("costs: %w: %w", ErrNonFinite, err)
	}
	if len(costs) > 0 && floats.Min(costs) < 0 {
		return fmt.Errorf("costs: index %d: %w", floats.MinIdx(costs), ErrNegativeCost)
	}

	return nil
}

// validateCost checks a single cost; +Inf is legal (shifts forbidden).
func validateCost(cost float64) error {
	switch {
	case math.IsNaN(cost) || math.IsInf(cost, -1):
		return fmt.Errorf("cost %v: %w", cost, ErrNonFinite)
	case cost < 0:
		return fmt.Errorf("cost %v: %w", cost, ErrNegativeCost)
	}

	return nil
}

// validateTrain rejects non-finite event times and, when ordered is set,
// decreasing ones.
func validateTrain(idx int, train []float64, ordered bool) error {
	if err := tensor.ValidateFinite(train); err != nil {
		return fmt.Errorf("train %d: %w: %w", idx, ErrNonFinite, err)
	}
	if ordered {
		if err := tensor.ValidateNonDecreasing(train); err != nil {
			return fmt.Errorf("train %d: %w: %w", idx, ErrUnsorted, err)
		}
	}

	return nil
}

func validateTrains(trains [][]float64, ordered bool) error {
	for i, tr := range trains {
		if err := validateTrain(i, tr, ordered); err != nil {
			return err
		}
	}

	return nil
}

func validateTrainsOrder(trains [][]float64) error {
	for i, tr := range trains {
		if err := tensor.ValidateNonDecreasing(tr); err != nil {
			return fmt.Errorf("train %d: %w: %w", i, ErrUnsorted, err)
		}
	}

	return nil
}
