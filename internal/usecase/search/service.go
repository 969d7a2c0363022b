package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DSTX70/teamhub-search/internal/domain"
	"github.com/DSTX70/teamhub-search/internal/domain/search/candidate"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/page"
	"github.com/DSTX70/teamhub-search/internal/domain/search/request"
	"github.com/DSTX70/teamhub-search/internal/domain/search/subtree"
	"github.com/DSTX70/teamhub-search/internal/logger"
	"github.com/DSTX70/teamhub-search/internal/metrics"
)

// DefaultTimeout bounds the provider fan-out for one request.
const DefaultTimeout = 5 * time.Second

// Service is the universal-search orchestrator: the single entry point
// that dispatches entity providers, applies the scope filter, fuses the
// candidate lists, and paginates.
type Service struct {
	providers map[entity.Type]Provider
	resolver  SubtreeResolver
	timeout   time.Duration
}

// New creates a search service over the given provider set.
func New(providers []Provider, resolver SubtreeResolver) *Service {
	m := make(map[entity.Type]Provider, len(providers))
	for _, p := range providers {
		m[p.EntityType()] = p
	}
	return &Service{providers: m, resolver: resolver, timeout: DefaultTimeout}
}

// WithTimeout overrides the fan-out timeout.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Search executes one universal search request. All dispatched providers
// must succeed: a single provider failure or an elapsed timeout fails the
// whole request, because a silently missing entity type is indistinguishable
// from "no matches" on the caller's side.
func (s *Service) Search(ctx context.Context, req *request.Request) (page.Page, error) {
	active := s.activeProviders(req.Types())

	// Resolve the scope subtree before fanning out: an unknown owner has
	// no descendants, so there is nothing to search.
	sub, err := s.resolveScope(ctx, req)
	if err != nil {
		return page.Page{}, err
	}
	if !req.Scope().IsGlobal() && !sub.IsResolved() {
		logger.FromContext(ctx).Info("scope owner not found",
			zap.String("scope", req.Scope().String()),
			zap.String("owner_id", req.OwnerID()),
		)
		return page.New(0, req.Limit(), req.Offset(), nil), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lists := make([][]candidate.Candidate, len(active))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range active {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			found, err := p.Search(gctx, req.Query())
			metrics.ObserveProvider(string(p.EntityType()), time.Since(start).Seconds())
			if err != nil {
				metrics.IncProviderError(string(p.EntityType()))
				if errors.Is(err, context.DeadlineExceeded) {
					return fmt.Errorf("%w: provider %s", domain.ErrSearchTimeout, p.EntityType())
				}
				return fmt.Errorf("%w: %s: %w", domain.ErrProviderFailure, p.EntityType(), err)
			}
			lists[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return page.Page{}, err
	}

	if !req.Scope().IsGlobal() {
		for i, l := range lists {
			lists[i] = filterByScope(l, &sub)
		}
	}

	result := fuse(lists, req.Limit(), req.Offset())
	metrics.ObserveResultCount(result.Count())
	return result, nil
}

// activeProviders returns the providers for the requested types, in
// canonical tag order; an empty filter selects all of them.
func (s *Service) activeProviders(types []entity.Type) []Provider {
	if len(types) == 0 {
		types = entity.All()
	}
	active := make([]Provider, 0, len(types))
	for _, t := range types {
		if p, ok := s.providers[t]; ok {
			active = append(active, p)
		}
	}
	return active
}

func (s *Service) resolveScope(
	ctx context.Context, req *request.Request,
) (sub subtree.Subtree, err error) {
	if req.Scope().IsGlobal() {
		return sub, nil
	}
	resolved, err := s.resolver.Resolve(ctx, req.Scope(), req.OwnerID())
	if err != nil {
		return sub, fmt.Errorf("resolve scope %s/%s: %w", req.Scope(), req.OwnerID(), err)
	}
	return resolved, nil
}

// filterByScope drops candidates outside the resolved subtree. It works on
// the uniform candidate shape, so new scope levels never touch providers.
func filterByScope(list []candidate.Candidate, sub *subtree.Subtree) []candidate.Candidate {
	kept := list[:0]
	for _, c := range list {
		if sub.Contains(c.Type(), c.ID()) {
			kept = append(kept, c)
		}
	}
	return kept
}
