package teamhub

import (
	"context"
	"errors"
	"strings"

	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/request"
	"github.com/DSTX70/teamhub-search/internal/domain/search/scope"
)

// ErrKnowledgeDisabled is returned by SearchKnowledge when the client was
// built without WithEmbedding.
var ErrKnowledgeDisabled = errors.New("teamhub: knowledge search disabled (no embedding provider configured)")

// SearchOptions configures a universal search query. The zero value
// searches all entity types globally with the default page size.
type SearchOptions struct {
	Limit   int
	Offset  int
	Scope   string // "", "global", "brand", "product", "project", "bu"
	OwnerID string // required for any scope narrower than global
	Types   []string
}

// Item is one fused search result.
type Item struct {
	Type   string
	ID     string
	Title  string
	Score  float64
	Path   []string
	Extras map[string]string
}

// Page is one page of search results with the exact pre-pagination count.
type Page struct {
	Count  int
	Limit  int
	Offset int
	Items  []Item
}

// Search runs one universal search across all entity tables.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (*Page, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	types := make([]entity.Type, 0, len(opts.Types))
	for _, t := range opts.Types {
		types = append(types, entity.Type(strings.ToLower(strings.TrimSpace(t))))
	}

	req, err := request.New(
		query,
		opts.Limit,
		opts.Offset,
		scope.Scope(strings.ToUpper(opts.Scope)),
		opts.OwnerID,
		types,
	)
	if err != nil {
		return nil, err
	}

	result, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(result.Items()))
	for _, cand := range result.Items() {
		items = append(items, Item{
			Type:   string(cand.Type()),
			ID:     cand.ID(),
			Title:  cand.Title(),
			Score:  cand.Score(),
			Path:   cand.Path(),
			Extras: cand.Extras(),
		})
	}
	return &Page{
		Count:  result.Count(),
		Limit:  result.Limit(),
		Offset: result.Offset(),
		Items:  items,
	}, nil
}

// Article is one knowledge-base hit.
type Article struct {
	ID      string
	Title   string
	Score   float64
	Source  string
	Excerpt string
}

// KnowledgePage is one page of knowledge-base results.
type KnowledgePage struct {
	Count  int
	Limit  int
	Offset int
	Items  []Article
}

// SearchKnowledge runs a semantic search over the knowledge base.
// Requires the client to be built with WithEmbedding.
func (c *Client) SearchKnowledge(
	ctx context.Context, query string, limit, offset int,
) (*KnowledgePage, error) {
	if c.knowledgeSvc == nil {
		return nil, ErrKnowledgeDisabled
	}

	result, err := c.knowledgeSvc.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]Article, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, Article{
			ID:      a.ID(),
			Title:   a.Title(),
			Score:   a.Score(),
			Source:  a.Source(),
			Excerpt: a.Excerpt(),
		})
	}
	return &KnowledgePage{
		Count:  result.Count,
		Limit:  result.Limit,
		Offset: result.Offset,
		Items:  items,
	}, nil
}
