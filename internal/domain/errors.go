package domain

import "errors"

var (
	// ErrListingNotFound signals a missing listing.
	ErrListingNotFound = errors.New("listing not found")
	// ErrInvalidInput signals rejected caller input (filters, preferences, pagination).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRecord signals a malformed listing record read from the store.
	ErrInvalidRecord = errors.New("invalid listing record")
	// ErrStoreUnavailable signals a failed or unreachable document store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
