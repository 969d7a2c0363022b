package search

import (
	"context"

	"github.com/DSTX70/teamhub-search/internal/domain/search/candidate"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/scope"
	"github.com/DSTX70/teamhub-search/internal/domain/search/subtree"
)

// Provider produces scored candidates for exactly one entity type.
// The query is trimmed and at least two characters long; providers may
// rely on that. Providers are read-only and must not cap their output —
// pagination happens after fusion.
type Provider interface {
	EntityType() entity.Type
	Search(ctx context.Context, query string) ([]candidate.Candidate, error)
}

// SubtreeResolver maps a non-global scope owner to the set of entities
// descending from it. An owner that does not resolve yields subtree.None()
// with a nil error.
type SubtreeResolver interface {
	Resolve(ctx context.Context, s scope.Scope, ownerID string) (subtree.Subtree, error)
}
