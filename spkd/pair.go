package spkd

import "math"

// Distance computes the Victor–Purpura distance between two spike trains
// for a single cost value.
//
// Shortcuts:
//   - cost == 0    → |L_a − L_b| (timing is free, only counts matter).
//   - cost == +Inf → L_a + L_b  (every shift is forbidden).
//   - an empty train → L_a + L_b.
//
// Otherwise the DP keeps only two rows (memory O(L_b)) and produces
// bit-identical results to the corresponding cell of Distances.
//
// Errors:
//   - ErrNonFinite    — NaN/±Inf event time, NaN or -Inf cost.
//   - ErrNegativeCost — cost < 0.
func Distance(a, b []float64, cost float64) (float64, error) {
	if err := validateCost(cost); err != nil {
		return 0, err
	}
	if err := validateTrain(0, a, false); err != nil {
		return 0, err
	}
	if err := validateTrain(1, b, false); err != nil {
		return 0, err
	}

	return distance(a, b, cost), nil
}

// distance is Distance without input validation.
func distance(a, b []float64, cost float64) float64 {
	n, m := len(a), len(b)
	switch {
	case cost == 0:
		return math.Abs(float64(n - m))
	case math.IsInf(cost, 1), n == 0, m == 0:
		return float64(n + m)
	}

	return rollingDistance(a, b, cost)
}

// rollingDistance runs the recurrence with two rows of length len(b)+1.
func rollingDistance(a, b []float64, cost float64) float64 {
	m := len(b)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = float64(j)
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = float64(i)
		t := a[i-1]
		for j := 1; j <= m; j++ {
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+float64(cost*math.Abs(t-b[j-1])))
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
