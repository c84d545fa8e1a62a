// Package metricspace computes spike-train metric-space distances for
// temporal-coding analyses of neural recordings.
//
// 🚀 What is metricspace?
//
//	A pure-Go numerical library for the Victor–Purpura family of spike-train
//	distances. Given N spike trains and Q temporal cost parameters it builds
//	the dense N×N×Q distance tensor that downstream clustering and
//	information analyses consume.
//
// Under the hood, everything is organized under two subpackages:
//
//	spkd/   — Victor–Purpura kernel, parallel pair driver, tensor assembler,
//	          single-pair and sliding-alignment distances, cost grids
//	tensor/ — dense row-major 2-D/3-D float64 storage, broadcasts, validators
//
// Quick example:
//
//	d, err := spkd.Distances(
//	  [][]float64{{0.0, 0.3}, {0.1, 0.4}},
//	  spkd.DefaultCosts(),
//	)
//	v, _ := d.At(0, 1, 9) // q = 1 → 0.2
//
//	go get github.com/katalvlaran/metricspace
package metricspace
