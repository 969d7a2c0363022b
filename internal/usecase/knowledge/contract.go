package knowledge

import (
	"context"

	dknow "github.com/DSTX70/teamhub-search/internal/domain/knowledge"
)

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Repository retrieves the nearest knowledge articles to a query vector.
type Repository interface {
	SearchKNN(ctx context.Context, vector []float32, k int) ([]dknow.Article, error)
}
