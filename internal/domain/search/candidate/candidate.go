// Package candidate defines the uniform scored row every entity provider emits.
package candidate

import (
	"fmt"

	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
)

// Candidate is a single scored search hit, a read-only projection over one
// entity row. Candidates are built fresh per request and never persisted.
type Candidate struct {
	entityType entity.Type
	id         string
	title      string
	score      float64
	path       []string
	extras     map[string]string
}

// New creates a candidate. Path may be nil and is normalized to an empty
// slice; extras stay opaque to the fusion and pagination layers.
func New(
	t entity.Type, id, title string, score float64,
	path []string, extras map[string]string,
) (Candidate, error) {
	if !t.IsValid() {
		return Candidate{}, fmt.Errorf("invalid entity type %q", t)
	}
	if id == "" {
		return Candidate{}, fmt.Errorf("id is required")
	}
	if title == "" {
		return Candidate{}, fmt.Errorf("title is required")
	}
	if path == nil {
		path = []string{}
	}
	return Candidate{
		entityType: t,
		id:         id,
		title:      title,
		score:      score,
		path:       path,
		extras:     extras,
	}, nil
}

// Type returns the entity-type tag.
func (c *Candidate) Type() entity.Type { return c.entityType }

// ID returns the identifier, unique within the type.
func (c *Candidate) ID() string { return c.id }

// Title returns the display string.
func (c *Candidate) Title() string { return c.title }

// Score returns the blended relevance score.
func (c *Candidate) Score() float64 { return c.score }

// Path returns the breadcrumb from root to this entity. Never nil.
func (c *Candidate) Path() []string { return c.path }

// Extras returns the type-specific key/value map.
func (c *Candidate) Extras() map[string]string { return c.extras }

// Less implements the result total order: score descending, then type
// ascending, then id ascending. Guarantees reproducible pagination.
func Less(a, b *Candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.entityType != b.entityType {
		return a.entityType < b.entityType
	}
	return a.id < b.id
}
