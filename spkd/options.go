// Package spkd: functional configuration for the distance assembler.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves automatic values.
//
// Deterministic behavior: results never depend on the worker count; every
// pair writes its own disjoint fiber of the output tensor.
package spkd

import (
	"io"
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects the pair-driver parallelism. 0 means one worker
	// per available CPU (runtime.GOMAXPROCS).
	DefaultWorkers = 0

	// DefaultSymmetry mirrors the computed triangle into a fully symmetric tensor.
	DefaultSymmetry = Symmetric

	// DefaultEmptyPolicy drops empty spike trains before computing.
	DefaultEmptyPolicy = DropEmpty

	// DefaultScaledDiff folds the cost into the shift term instead of
	// materialising the Q×L_i×L_j ScaledDiff tensor per pair.
	DefaultScaledDiff = false

	// DefaultValidate rejects non-finite event times/costs and negative costs.
	DefaultValidate = true

	// DefaultOrderCheck leaves event-time ordering unchecked.
	DefaultOrderCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "spkd: WithWorkers: n must be >= 0"
	panicSymmetryInvalid = "spkd: WithSymmetry: unknown mode"
	panicPolicyInvalid   = "spkd: WithEmptyPolicy: unknown policy"
	panicLoggerNil       = "spkd: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers     int
	symmetry    Symmetry
	emptyPolicy EmptyPolicy
	scaledDiff  bool
	validate    bool
	orderCheck  bool
	logger      *slog.Logger
}

// WithWorkers sets the number of goroutines computing spike-train pairs.
// n == 0 selects runtime.GOMAXPROCS(0); n == 1 computes serially.
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSymmetry selects how the computed triangle is mirrored.
// Panics on an unknown mode.
func WithSymmetry(s Symmetry) Option {
	if s != Symmetric && s != LowerTriangular {
		panic(panicSymmetryInvalid)
	}

	return func(o *Options) { o.symmetry = s }
}

// WithEmptyPolicy selects whether empty spike trains are dropped or kept.
// Panics on an unknown policy.
func WithEmptyPolicy(p EmptyPolicy) Option {
	if p != DropEmpty && p != KeepEmpty {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.emptyPolicy = p }
}

// WithScaledDiff makes the pair driver materialise the ScaledDiff tensor
// (q[k]·|t_i[a] − t_j[b]|) and run the kernel over it. Results are identical
// to the folded default; memory per worker grows by Q·L_i·L_j.
func WithScaledDiff() Option {
	return func(o *Options) { o.scaledDiff = true }
}

// WithOrderCheck rejects spike trains whose event times decrease (ErrUnsorted).
func WithOrderCheck() Option {
	return func(o *Options) { o.orderCheck = true }
}

// WithoutValidation skips the finite/non-negative input checks.
// Results for non-finite inputs are undefined.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// WithLogger routes structured diagnostics to l. Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// discardLogger drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// gatherOptions applies opts over the defaults and resolves automatic values.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		symmetry:    DefaultSymmetry,
		emptyPolicy: DefaultEmptyPolicy,
		scaledDiff:  DefaultScaledDiff,
		validate:    DefaultValidate,
		orderCheck:  DefaultOrderCheck,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}
