// Package request defines the validated universal-search request.
package request

import (
	"fmt"
	"strings"

	"github.com/DSTX70/teamhub-search/internal/domain"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/scope"
)

// Search parameter limits.
const (
	// MinQueryLength is the floor on trimmed query length. One-character
	// queries degenerate into prefix scans against the fuzzy index.
	MinQueryLength = 2
	DefaultLimit   = 20
	MaxLimit       = 50
)

// Request is a validated search query.
type Request struct {
	query       string
	limit       int
	offset      int
	searchScope scope.Scope
	ownerID     string
	types       []entity.Type
}

// New validates and normalizes search parameters.
// The query is trimmed and must keep at least MinQueryLength characters.
// Out-of-range limit/offset are clamped, not rejected. Scope defaults to
// GLOBAL; any narrower scope requires an owner id.
func New(
	query string,
	limit, offset int,
	s scope.Scope,
	ownerID string,
	types []entity.Type,
) (Request, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return Request{}, fmt.Errorf("%w: min %d chars", domain.ErrQueryTooShort, MinQueryLength)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	if s == "" {
		s = scope.Global
	}
	if !s.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", domain.ErrInvalidScope, s)
	}
	if !s.IsGlobal() && ownerID == "" {
		return Request{}, fmt.Errorf("%w: scope %s", domain.ErrOwnerRequired, s)
	}
	seen := make(map[entity.Type]struct{}, len(types))
	for _, t := range types {
		if !t.IsValid() {
			return Request{}, fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, t)
		}
		seen[t] = struct{}{}
	}
	// Dedupe while keeping the canonical tag order.
	var uniq []entity.Type
	if len(seen) > 0 {
		for _, t := range entity.All() {
			if _, ok := seen[t]; ok {
				uniq = append(uniq, t)
			}
		}
	}

	return Request{
		query:       query,
		limit:       limit,
		offset:      offset,
		searchScope: s,
		ownerID:     ownerID,
		types:       uniq,
	}, nil
}

// Query returns the trimmed search text.
func (r *Request) Query() string { return r.query }

// Limit returns the page size, clamped to [1, MaxLimit].
func (r *Request) Limit() int { return r.limit }

// Offset returns the page offset.
func (r *Request) Offset() int { return r.offset }

// Scope returns the ownership scope.
func (r *Request) Scope() scope.Scope { return r.searchScope }

// OwnerID returns the owning node id (empty for GLOBAL scope).
func (r *Request) OwnerID() string { return r.ownerID }

// Types returns the requested entity types in canonical order.
// Empty means all types.
func (r *Request) Types() []entity.Type { return r.types }
