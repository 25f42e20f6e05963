package algebra

import "errors"

// Sentinel errors shared by every layer of the engine. Individual
// packages wrap these with their own prefix (e.g. "buchberger: %w")
// rather than redefining them, so callers can errors.Is against a
// single shared error contract regardless of which driver raised it.
var (
	// ErrNotImplementedAlgorithm indicates an unknown groebner_basis
	// algorithm name was requested.
	ErrNotImplementedAlgorithm = errors.New("algebra: algorithm not implemented")

	// ErrInvalidPrecision indicates a requested precision was not a
	// positive finite integer.
	ErrInvalidPrecision = errors.New("algebra: precision must be a positive finite integer")

	// ErrPrecisionExhausted indicates that all terms of a running
	// remainder vanished into O(pi^infinity) before a non-zero result
	// could be certified.
	ErrPrecisionExhausted = errors.New("algebra: precision exhausted before remainder could be certified")

	// ErrCancelled indicates the driver was aborted via its
	// cancellation token before completing.
	ErrCancelled = errors.New("algebra: computation cancelled")
)
