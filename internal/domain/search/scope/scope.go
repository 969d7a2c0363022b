// Package scope defines the ownership level a search is restricted to.
package scope

// Scope is the ownership level results are narrowed to.
type Scope string

// Scope levels, from the whole hierarchy down to a single project.
const (
	Global  Scope = "GLOBAL"
	BU      Scope = "BU"
	Brand   Scope = "BRAND"
	Product Scope = "PRODUCT"
	Project Scope = "PROJECT"
)

// IsValid checks if the scope is one of the supported levels.
func (s Scope) IsValid() bool {
	switch s {
	case Global, BU, Brand, Product, Project:
		return true
	}
	return false
}

// IsGlobal reports whether the scope imposes no ownership restriction.
func (s Scope) IsGlobal() bool { return s == Global }

func (s Scope) String() string { return string(s) }
