package provider

import "github.com/DSTX70/teamhub-search/internal/domain/search/entity"

// NewAgent creates the provider for automated-agent records.
func NewAgent(s store) *Repo {
	return newRepo(s, tableSpec{
		entityType:  entity.Agent,
		crumb:       "Agents",
		bodyField:   "role",
		extraFields: []string{"level", "status"},
	})
}

// NewBrand creates the brand provider. Brands are title-only rows.
func NewBrand(s store) *Repo {
	return newRepo(s, tableSpec{
		entityType: entity.Brand,
		crumb:      "Brands",
	})
}

// NewProduct creates the product provider.
func NewProduct(s store) *Repo {
	return newRepo(s, tableSpec{
		entityType:  entity.Product,
		crumb:       "Products",
		bodyField:   "description",
		extraFields: []string{"category"},
	})
}

// NewProject creates the project provider.
func NewProject(s store) *Repo {
	return newRepo(s, tableSpec{
		entityType:  entity.Project,
		crumb:       "Projects",
		bodyField:   "description",
		extraFields: []string{"status", "due_date"},
	})
}

// NewTask creates the task provider.
func NewTask(s store) *Repo {
	return newRepo(s, tableSpec{
		entityType:  entity.Task,
		crumb:       "Tasks",
		bodyField:   "description",
		extraFields: []string{"status", "assignee", "due_date"},
	})
}

// All constructs the full provider set in canonical tag order.
func All(s store) []*Repo {
	return []*Repo{NewAgent(s), NewBrand(s), NewProduct(s), NewProject(s), NewTask(s)}
}
