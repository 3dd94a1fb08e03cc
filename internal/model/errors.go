package model

import "errors"

// Rejection classes. The transport layer maps these to HTTP statuses with
// errors.Is, so every wrap must use %w.
var (
	// ErrInvalidInput covers malformed identities and out-of-range or
	// non-finite coordinates. Raised before any state is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrImplausibleVelocity means the claim implies travel faster than the
	// configured threshold since the last accepted claim.
	ErrImplausibleVelocity = errors.New("implausible velocity")

	// ErrStaleClaim means the claim's timestamp is not after the last
	// accepted claim for the identity, so no speed can be computed.
	ErrStaleClaim = errors.New("stale claim")

	// ErrSignerUnavailable means the service signing key was absent or
	// malformed at startup. Fatal for attestation until reconfigured.
	ErrSignerUnavailable = errors.New("signing key unavailable")
)
