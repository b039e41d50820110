package resolver

import "errors"

// Sentinel errors for the resolver package. All three indicate caller or
// wiring problems, never transient conditions; none are retried.
var (
	// ErrUnknownSource is returned when the requested source is not registered.
	ErrUnknownSource = errors.New("unknown source")

	// ErrUnsupportedCapability is returned when an adapter exists but lacks
	// the playables-fetch capability. This is a wiring bug.
	ErrUnsupportedCapability = errors.New("adapter does not support capability")

	// ErrAmbiguousAddress is returned when address parsing cannot determine
	// a source and the caller must clarify.
	ErrAmbiguousAddress = errors.New("ambiguous address")
)
