// Package knowledge implements vector retrieval over indexed knowledge articles.
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/DSTX70/teamhub-search/internal/db"
	"github.com/DSTX70/teamhub-search/internal/domain"
	dknow "github.com/DSTX70/teamhub-search/internal/domain/knowledge"
)

const indexName = domain.KeyPrefix + "knowledge:idx"
const keyPrefix = domain.KeyPrefix + "knowledge:"

// store is the consumer interface for knowledge search.
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements usecase/knowledge.Repository.
type Repo struct {
	store store
}

// New creates a knowledge repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchKNN returns the k nearest articles to the query vector.
func (r *Repo) SearchKNN(ctx context.Context, vector []float32, k int) ([]dknow.Article, error) {
	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    indexName,
		Vector:       vector,
		K:            k,
		ReturnFields: []string{"title", "source", "excerpt"},
	})
	if err != nil {
		return nil, fmt.Errorf("search knowledge knn: %w", err)
	}

	articles := make([]dknow.Article, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		id := strings.TrimPrefix(e.Key, keyPrefix)
		title := e.Fields["title"]
		if id == "" || title == "" {
			continue
		}
		articles = append(articles, dknow.New(
			id, title, e.Score, e.Fields["source"], e.Fields["excerpt"],
		))
	}
	return articles, nil
}
