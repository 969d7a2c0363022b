// Package provider implements the per-entity search providers. All five share
// one core that blends the store's lexical and fuzzy scoring primitives; the
// per-type differences live in tableSpec.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/DSTX70/teamhub-search/internal/db"
	"github.com/DSTX70/teamhub-search/internal/domain"
	"github.com/DSTX70/teamhub-search/internal/domain/search/candidate"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
)

// Blend weights for the two sub-scores. System-wide constants: precise token
// matches outrank fuzzy guesses, but typos still surface.
const (
	lexicalWeight = 0.6
	fuzzyWeight   = 0.4
)

// maxRows bounds a single provider's store round-trip. Capping to the page
// happens after fusion, so this only guards against pathological queries.
const maxRows = 500

// rootCrumb is the first breadcrumb segment of every entity path.
const rootCrumb = "Team Hub"

// store is the consumer interface for provider search operations.
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	SearchFuzzy(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// tableSpec describes one searchable entity table.
type tableSpec struct {
	entityType  entity.Type
	crumb       string   // plural breadcrumb segment, e.g. "Projects"
	bodyField   string   // secondary TEXT field for the lexical predicate, "" if none
	extraFields []string // hash fields surfaced in Candidate extras
}

// Repo produces scored candidates for exactly one entity type.
type Repo struct {
	store store
	spec  tableSpec
}

func newRepo(s store, spec tableSpec) *Repo {
	return &Repo{store: s, spec: spec}
}

// EntityType returns the fixed type tag of this provider.
func (r *Repo) EntityType() entity.Type { return r.spec.entityType }

// Search returns every row of this provider's table matching the query,
// scored by the 60/40 lexical/fuzzy blend. A row qualifies when either
// predicate matches; the missing sub-score contributes zero.
func (r *Repo) Search(ctx context.Context, query string) ([]candidate.Candidate, error) {
	lexFields := []string{"title"}
	if r.spec.bodyField != "" {
		lexFields = append(lexFields, r.spec.bodyField)
	}
	returnFields := append([]string{"title"}, r.spec.extraFields...)

	lex, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName:    domain.IndexName(r.spec.entityType),
		Query:        query,
		Fields:       lexFields,
		Limit:        maxRows,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("search text %s: %w", r.spec.entityType, err)
	}

	// Fuzzy matching targets the title only: typo tolerance on long body
	// text produces noise, not recall.
	fuz, err := r.store.SearchFuzzy(ctx, &db.TextQuery{
		IndexName:    domain.IndexName(r.spec.entityType),
		Query:        query,
		Fields:       []string{"title"},
		Limit:        maxRows,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("search fuzzy %s: %w", r.spec.entityType, err)
	}

	return r.blend(lex, fuz)
}

// blend merges the two hit lists per row key and builds candidates.
func (r *Repo) blend(lex, fuz *db.SearchResult) ([]candidate.Candidate, error) {
	type hit struct {
		lexical float64
		fuzzy   float64
		fields  map[string]string
	}

	hits := make(map[string]*hit)
	order := make([]string, 0, len(lex.Entries)+len(fuz.Entries))

	for _, e := range lex.Entries {
		hits[e.Key] = &hit{lexical: e.Score, fields: e.Fields}
		order = append(order, e.Key)
	}
	for _, e := range fuz.Entries {
		if h, ok := hits[e.Key]; ok {
			h.fuzzy = e.Score
			continue
		}
		hits[e.Key] = &hit{fuzzy: e.Score, fields: e.Fields}
		order = append(order, e.Key)
	}

	prefix := domain.KeyPrefix + string(r.spec.entityType) + ":"
	out := make([]candidate.Candidate, 0, len(order))
	for _, key := range order {
		h := hits[key]
		id := strings.TrimPrefix(key, prefix)
		title := h.fields["title"]
		if id == "" || title == "" {
			continue // malformed row, not worth failing the whole search
		}

		var extras map[string]string
		if len(r.spec.extraFields) > 0 {
			extras = make(map[string]string, len(r.spec.extraFields))
			for _, f := range r.spec.extraFields {
				if v, ok := h.fields[f]; ok && v != "" {
					extras[f] = v
				}
			}
		}

		score := lexicalWeight*h.lexical + fuzzyWeight*h.fuzzy
		c, err := candidate.New(
			r.spec.entityType, id, title, score,
			[]string{rootCrumb, r.spec.crumb, title}, extras,
		)
		if err != nil {
			return nil, fmt.Errorf("build candidate %s/%s: %w", r.spec.entityType, id, err)
		}
		out = append(out, c)
	}

	return out, nil
}
