package spkd

import "errors"

// Sentinel errors returned by the public entry points. Each is wrapped with
// the offending position (train index, cost index) at the detection site;
// match with errors.Is.
var (
	// ErrNonFinite indicates a NaN or ±Inf event time or cost value.
	ErrNonFinite = errors.New("spkd: non-finite value")

	// ErrNegativeCost indicates a cost parameter below zero.
	ErrNegativeCost = errors.New("spkd: cost must be non-negative")

	// ErrUnsorted indicates a spike train whose event times decrease.
	// Only reported when order checking is enabled (WithOrderCheck).
	ErrUnsorted = errors.New("spkd: spike train is not time-ordered")

	// ErrBadResolution indicates a non-positive or non-finite slide resolution.
	ErrBadResolution = errors.New("spkd: slide resolution must be finite and > 0")
)
