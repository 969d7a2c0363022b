// Package page defines the paginated universal-search response.
package page

import "github.com/DSTX70/teamhub-search/internal/domain/search/candidate"

// Page is one page of fused search results plus the exact total count.
type Page struct {
	count  int
	limit  int
	offset int
	items  []candidate.Candidate
}

// New creates a result page. Items may be nil and is normalized to an
// empty slice so the JSON body always carries an array.
func New(count, limit, offset int, items []candidate.Candidate) Page {
	if items == nil {
		items = []candidate.Candidate{}
	}
	return Page{count: count, limit: limit, offset: offset, items: items}
}

// Count returns the total number of eligible candidates before pagination.
func (p *Page) Count() int { return p.count }

// Limit echoes the effective page size.
func (p *Page) Limit() int { return p.limit }

// Offset echoes the effective page offset.
func (p *Page) Offset() int { return p.offset }

// Items returns the requested page, sorted by the result total order.
func (p *Page) Items() []candidate.Candidate { return p.items }
