// Package teamhub is the embedded SDK: it wires the search services
// directly over a Redis store, for use without the HTTP server.
package teamhub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DSTX70/teamhub-search/internal/db"
	dbRedis "github.com/DSTX70/teamhub-search/internal/db/redis"
	hierarchyrepo "github.com/DSTX70/teamhub-search/internal/repository/hierarchy"
	knowledgerepo "github.com/DSTX70/teamhub-search/internal/repository/knowledge"
	"github.com/DSTX70/teamhub-search/internal/repository/provider"
	openaiEmb "github.com/DSTX70/teamhub-search/internal/transport/openai"
	healthuc "github.com/DSTX70/teamhub-search/internal/usecase/health"
	knowledgeuc "github.com/DSTX70/teamhub-search/internal/usecase/knowledge"
	searchuc "github.com/DSTX70/teamhub-search/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the teamhub-search SDK entry point.
type Client struct {
	store        db.Store
	searchSvc    *searchuc.Service
	knowledgeSvc *knowledgeuc.Service
	healthSvc    *healthuc.Service
}

// New creates a Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("teamhub: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("teamhub: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("teamhub: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	repos := provider.All(store)
	providers := make([]searchuc.Provider, len(repos))
	for i, r := range repos {
		providers[i] = r
	}

	searchSvc := searchuc.New(providers, hierarchyrepo.New(store))
	if cfg.searchTimeout > 0 {
		searchSvc = searchSvc.WithTimeout(cfg.searchTimeout)
	}

	var knowledgeSvc *knowledgeuc.Service
	if cfg.embeddingAPIKey != "" {
		embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.embeddingAPIKey,
			BaseURL:    cfg.embeddingBaseURL,
			Model:      cfg.embeddingModel,
			Dimensions: cfg.embeddingDims,
		})
		knowledgeSvc = knowledgeuc.New(embedder, knowledgerepo.New(store))
	}

	return &Client{
		store:        store,
		searchSvc:    searchSvc,
		knowledgeSvc: knowledgeSvc,
		healthSvc:    healthuc.New(store),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component → "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
