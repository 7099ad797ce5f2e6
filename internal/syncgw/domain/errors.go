package domain

import "errors"

var (
	// ErrAuthSessionMissing means the sync precondition failed: no identity.
	// Callers prompt for authentication instead of retrying.
	ErrAuthSessionMissing = errors.New("auth session missing")

	ErrContextNotFound = errors.New("context not found")
)
