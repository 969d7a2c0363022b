// Package knowledge implements semantic search over the knowledge base.
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DSTX70/teamhub-search/internal/domain"
	dknow "github.com/DSTX70/teamhub-search/internal/domain/knowledge"
	"github.com/DSTX70/teamhub-search/internal/domain/search/request"
	"github.com/DSTX70/teamhub-search/internal/logger"
)

// maxK caps how many neighbours are retrieved per query. The count
// reported to clients is exact up to this depth.
const maxK = 100

// Result is one page of knowledge-base hits.
type Result struct {
	Count  int
	Limit  int
	Offset int
	Items  []dknow.Article
}

// Service coordinates query embedding and vector retrieval.
type Service struct {
	embedder Embedder
	repo     Repository
}

// New creates a knowledge search service.
func New(embedder Embedder, repo Repository) *Service {
	return &Service{embedder: embedder, repo: repo}
}

// Search embeds the query and returns the requested page of nearest articles.
func (s *Service) Search(ctx context.Context, query string, limit, offset int) (Result, error) {
	query = strings.TrimSpace(query)
	if len(query) < request.MinQueryLength {
		return Result{}, fmt.Errorf("query %q: %w", query, domain.ErrQueryTooShort)
	}
	if limit <= 0 {
		limit = request.DefaultLimit
	}
	if limit > request.MaxLimit {
		limit = request.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("embed query: %w", err)
	}

	articles, err := s.repo.SearchKNN(ctx, vector, maxK)
	if err != nil {
		return Result{}, fmt.Errorf("knn search: %w", err)
	}

	logger.FromContext(ctx).Debug("knowledge search",
		zap.Int("hits", len(articles)),
		zap.Int("limit", limit),
		zap.Int("offset", offset))

	count := len(articles)
	if offset >= count {
		return Result{Count: count, Limit: limit, Offset: offset, Items: []dknow.Article{}}, nil
	}
	end := offset + limit
	if end > count {
		end = count
	}
	return Result{Count: count, Limit: limit, Offset: offset, Items: articles[offset:end]}, nil
}
