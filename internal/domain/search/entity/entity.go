// Package entity defines the closed set of searchable entity types.
package entity

// Type tags a search candidate with the table it came from.
type Type string

// Searchable entity types, in lexicographic tag order.
const (
	Agent   Type = "agent"
	Brand   Type = "brand"
	Product Type = "product"
	Project Type = "project"
	Task    Type = "task"
)

// All returns every searchable type in lexicographic tag order.
// The order is load-bearing: it is the secondary sort key of the
// result total order.
func All() []Type {
	return []Type{Agent, Brand, Product, Project, Task}
}

// IsValid checks if the type is one of the supported tags.
func (t Type) IsValid() bool {
	switch t {
	case Agent, Brand, Product, Project, Task:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }
