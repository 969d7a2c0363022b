// Package domain holds sentinel errors and storage key conventions.
package domain

import "github.com/DSTX70/teamhub-search/internal/domain/search/entity"

// KeyPrefix namespaces every key this service reads.
const KeyPrefix = "hub:"

// NodeKey returns the hash key of one hierarchy node. Kind covers the
// searchable entity types plus non-searchable levels like "bu".
func NodeKey(kind, id string) string {
	return KeyPrefix + kind + ":" + id
}

// NodeChildrenKey returns the set key holding the direct children of a node.
// Members are "kind:id" pairs, so one set can mix child kinds.
func NodeChildrenKey(kind, id string) string {
	return KeyPrefix + "children:" + kind + ":" + id
}

// EntityKey returns the hash key of one searchable entity row.
func EntityKey(t entity.Type, id string) string {
	return NodeKey(string(t), id)
}

// IndexName returns the FT index covering one entity table.
func IndexName(t entity.Type) string {
	return KeyPrefix + string(t) + ":idx"
}
