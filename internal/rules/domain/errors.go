package domain

import "errors"

var (
	// ErrNoSnapshot covers both an absent and a malformed embedded snapshot;
	// callers treat the two identically and proceed with defaults.
	ErrNoSnapshot = errors.New("no snapshot found")

	ErrUnknownPlatform = errors.New("unknown platform")
)
