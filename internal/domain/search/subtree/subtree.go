// Package subtree represents the resolved membership of one scope owner.
package subtree

import "github.com/DSTX70/teamhub-search/internal/domain/search/entity"

// Subtree is the set of searchable entities under one scope owner.
// The zero value is an unresolved subtree containing nothing.
type Subtree struct {
	resolved bool
	members  map[entity.Type]map[string]struct{}
}

// New creates a resolved subtree from per-type member id lists.
func New(members map[entity.Type][]string) Subtree {
	m := make(map[entity.Type]map[string]struct{}, len(members))
	for t, ids := range members {
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		m[t] = set
	}
	return Subtree{resolved: true, members: m}
}

// None returns the subtree of an owner that does not exist: unresolved,
// admitting no candidates.
func None() Subtree {
	return Subtree{}
}

// IsResolved reports whether the owner node existed. An unresolved owner
// is not an error, but callers log it distinctly from an empty search.
func (s *Subtree) IsResolved() bool { return s.resolved }

// Contains reports whether the entity belongs to the subtree.
func (s *Subtree) Contains(t entity.Type, id string) bool {
	ids, ok := s.members[t]
	if !ok {
		return false
	}
	_, ok = ids[id]
	return ok
}

// Size returns the total number of member entities.
func (s *Subtree) Size() int {
	n := 0
	for _, ids := range s.members {
		n += len(ids)
	}
	return n
}
