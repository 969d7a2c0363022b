package domain

import "errors"

var (
	// ErrQueryTooShort signals a query below the minimum trimmed length.
	ErrQueryTooShort = errors.New("query too short")
	// ErrInvalidScope signals an unknown scope level.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrOwnerRequired signals a non-global scope without an owner id.
	ErrOwnerRequired = errors.New("owner_id required")
	// ErrUnknownEntityType signals a type filter outside the closed tag set.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrProviderFailure signals that an entity provider could not produce
	// candidates; the whole search fails rather than returning a partial set.
	ErrProviderFailure = errors.New("provider failure")
	// ErrSearchTimeout signals that the provider fan-out exceeded its deadline.
	ErrSearchTimeout = errors.New("search timed out")

	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
