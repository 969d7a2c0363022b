// Package hierarchy resolves a scope owner into the set of entities that
// descend from it, by walking the parent→children edges kept in the store.
package hierarchy

import (
	"context"
	"fmt"
	"strings"

	"github.com/DSTX70/teamhub-search/internal/domain"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/scope"
	"github.com/DSTX70/teamhub-search/internal/domain/search/subtree"
)

// store is the consumer interface for hierarchy reads.
type store interface {
	Exists(ctx context.Context, key string) (bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Resolver implements usecase/search.SubtreeResolver against the store.
type Resolver struct {
	store store
}

// New creates a hierarchy resolver.
func New(s store) *Resolver {
	return &Resolver{store: s}
}

// scopeKind maps a non-global scope to the node kind of its owner.
// BU nodes exist only in the hierarchy; they are not searchable entities.
var scopeKind = map[scope.Scope]string{
	scope.BU:      "bu",
	scope.Brand:   string(entity.Brand),
	scope.Product: string(entity.Product),
	scope.Project: string(entity.Project),
}

// Resolve walks the subtree rooted at (scope, ownerID) and returns its
// searchable members, the owner included when it is itself searchable.
// An owner that does not exist yields subtree.None(), not an error.
func (r *Resolver) Resolve(
	ctx context.Context, s scope.Scope, ownerID string,
) (subtree.Subtree, error) {
	kind, ok := scopeKind[s]
	if !ok {
		return subtree.None(), fmt.Errorf("scope %s has no owner kind", s)
	}

	exists, err := r.store.Exists(ctx, domain.NodeKey(kind, ownerID))
	if err != nil {
		return subtree.None(), fmt.Errorf("check owner %s:%s: %w", kind, ownerID, err)
	}
	if !exists {
		return subtree.None(), nil
	}

	members := make(map[entity.Type][]string)
	if t := entity.Type(kind); t.IsValid() {
		members[t] = append(members[t], ownerID)
	}

	type node struct{ kind, id string }
	queue := []node{{kind: kind, id: ownerID}}
	visited := map[node]struct{}{{kind: kind, id: ownerID}: {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		children, err := r.store.SMembers(ctx, domain.NodeChildrenKey(cur.kind, cur.id))
		if err != nil {
			return subtree.None(), fmt.Errorf("children of %s:%s: %w", cur.kind, cur.id, err)
		}

		for _, child := range children {
			childKind, childID, ok := strings.Cut(child, ":")
			if !ok || childID == "" {
				continue // malformed edge
			}
			n := node{kind: childKind, id: childID}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}

			if t := entity.Type(childKind); t.IsValid() {
				members[t] = append(members[t], childID)
			}
			queue = append(queue, n)
		}
	}

	return subtree.New(members), nil
}
