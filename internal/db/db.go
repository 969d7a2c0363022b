// Package db defines the storage contract consumed by the repositories.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces, not on Store itself.
type Store interface {
	Pinger
	Searcher
	HierarchyReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher provides the scoring primitives over FT indexes. Both text
// variants return scores normalized to [0, 1]; higher is more relevant.
type Searcher interface {
	// SearchText runs a tokenized full-text predicate over the given fields.
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
	// SearchFuzzy runs a typo-tolerant (Levenshtein-expanded) variant of
	// the same predicate.
	SearchFuzzy(ctx context.Context, q *TextQuery) (*SearchResult, error)
	// SearchKNN runs a vector similarity search.
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
}

// HierarchyReader provides read access to the ownership hierarchy:
// entity rows are hashes, parent→children edges are sets.
type HierarchyReader interface {
	SMembers(ctx context.Context, key string) ([]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}
