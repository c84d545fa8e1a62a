// Package spkd computes Victor–Purpura spike-train distances: an edit
// distance between sequences of event times, evaluated for a whole vector
// of temporal cost parameters at once.
//
// 🚀 What is the Victor–Purpura distance?
//
//	Three elementary operations turn one spike train into another:
//	  • delete a spike            — cost 1
//	  • insert a spike            — cost 1
//	  • shift a spike by Δt       — cost q·|Δt|
//	The distance is the cheapest sequence of operations. q sets the time
//	scale: q = 0 compares spike counts only, large q compares exact timing
//	(the distance tends to L_i + L_j for trains with distinct times).
//
// ✨ Key features:
//   - Distances: the full N×N×Q tensor for N trains and Q costs
//   - Q planes computed per pair from one score buffer, per-worker buffers
//     reused across pairs
//   - parallel pair driver over the flattened strict upper triangle
//   - symmetric (default) or lower-triangular output, empty trains dropped
//     (default) or kept in place
//   - Distance: one pair, one cost, two-row memory
//   - SlideDistance / SlideDistances: best distance over time translations
//   - DefaultCosts: the usual 0 ∪ 2^[-4..9] cost grid
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/metricspace/spkd"
//
//	trains := [][]float64{
//	  {0.0, 0.3},
//	  {0.1, 0.4},
//	  {0.0, 0.1, 0.5},
//	}
//	d, err := spkd.Distances(trains, []float64{0, 1, 10},
//	  spkd.WithWorkers(4),
//	  spkd.WithLogger(slog.Default()),
//	)
//	v, err := d.At(0, 2, 1) // trains 0 and 2 at q=1 → 1.2
//
// Performance:
//
//   - Time:   O(N²·L²·Q)
//   - Memory: O(N²·Q) output + O(Q·L_i·L_j) per worker
//
// Errors are sentinels (ErrNonFinite, ErrNegativeCost, ErrUnsorted,
// ErrBadResolution) wrapped with the offending position; match them with
// errors.Is. Internal shape mismatches are programming errors and panic.
package spkd
