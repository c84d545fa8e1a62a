package spkd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metricspace/spkd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistanceShortcuts covers the q=0, q=+Inf and empty-train fast paths.
func TestDistanceShortcuts(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0.5}

	d, err := spkd.Distance(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	d, err = spkd.Distance(a, a, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 6.0, d, "infinite cost forbids even zero-length shifts")

	d, err = spkd.Distance(nil, b, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = spkd.Distance(nil, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestDistanceTable checks small hand-computed alignments.
func TestDistanceTable(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		cost float64
		want float64
	}{
		{"single shift", []float64{0}, []float64{0.5}, 1, 0.5},
		{"shift too expensive", []float64{0}, []float64{0.5}, 10, 2},
		{"break-even", []float64{0}, []float64{1}, 2, 2},
		{"two shifts", []float64{0, 1}, []float64{0.25, 1.25}, 2, 1},
		{"shift plus insert", []float64{0}, []float64{0.1, 3}, 1, 1.1},
		{"identical", []float64{0.2, 0.4}, []float64{0.2, 0.4}, 50, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := spkd.Distance(tc.a, tc.b, tc.cost)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)

			rev, err := spkd.Distance(tc.b, tc.a, tc.cost)
			require.NoError(t, err)
			assert.InDelta(t, got, rev, tol, "distance is symmetric")
		})
	}
}

func TestDistanceErrors(t *testing.T) {
	_, err := spkd.Distance([]float64{0}, []float64{1}, math.NaN())
	require.ErrorIs(t, err, spkd.ErrNonFinite)

	_, err = spkd.Distance([]float64{0}, []float64{1}, math.Inf(-1))
	require.ErrorIs(t, err, spkd.ErrNonFinite)

	_, err = spkd.Distance([]float64{0}, []float64{1}, -1)
	require.ErrorIs(t, err, spkd.ErrNegativeCost)

	_, err = spkd.Distance([]float64{math.NaN()}, []float64{1}, 1)
	require.ErrorIs(t, err, spkd.ErrNonFinite)

	_, err = spkd.Distance([]float64{0}, []float64{math.Inf(-1)}, 1)
	require.ErrorIs(t, err, spkd.ErrNonFinite)
}
