package nlprule

import "errors"

// Error kinds returned by this package. All failures of public operations
// wrap exactly one of these, so callers can branch with errors.Is.
var (
	// ErrConfiguration marks caller mistakes: a missing sentence splitter,
	// a split token wider than one codepoint, a resource name without the
	// expected .gz suffix.
	ErrConfiguration = errors.New("nlprule: invalid configuration")

	// ErrResourceUnavailable marks network or filesystem failures that left
	// no usable artifact payload.
	ErrResourceUnavailable = errors.New("nlprule: resource unavailable")

	// ErrResourceCorrupt marks a payload that was obtained but could not be
	// decompressed or deserialized.
	ErrResourceCorrupt = errors.New("nlprule: resource corrupt")
)
