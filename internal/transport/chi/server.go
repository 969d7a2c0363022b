// Package chi implements the HTTP API on top of the go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/DSTX70/teamhub-search/internal/domain"
	"github.com/DSTX70/teamhub-search/internal/domain/search/candidate"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
	"github.com/DSTX70/teamhub-search/internal/domain/search/request"
	"github.com/DSTX70/teamhub-search/internal/domain/search/scope"
	healthuc "github.com/DSTX70/teamhub-search/internal/usecase/health"
	knowledgeuc "github.com/DSTX70/teamhub-search/internal/usecase/knowledge"
	searchuc "github.com/DSTX70/teamhub-search/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInternalError    = "internal_error"
	codeProviderError    = "embedding_provider_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search API over HTTP.
type Server struct {
	search        *searchuc.Service
	knowledge     *knowledgeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. knowledge may be nil when no
// embedding provider is configured.
func NewServer(
	search *searchuc.Service,
	knowledge *knowledgeuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		knowledge: knowledge,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrQueryTooShort, http.StatusUnprocessableEntity, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidScope, http.StatusUnprocessableEntity, codeValidationFailed),
		sentinelHandler(domain.ErrOwnerRequired, http.StatusUnprocessableEntity, codeValidationFailed),
		sentinelHandler(domain.ErrUnknownEntityType, http.StatusUnprocessableEntity, codeValidationFailed),
		sentinelHandler(domain.ErrSearchTimeout, http.StatusGatewayTimeout, codeInternalError),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeProviderError),
	}
	return s
}

// Routes mounts all API handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/v1/search", s.Search)
	r.Get("/api/v1/knowledge/search", s.SearchKnowledge)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// searchItem is the wire shape of one fused search hit.
type searchItem struct {
	Type   string            `json:"type"`
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Score  float64           `json:"score"`
	Path   []string          `json:"path"`
	Extras map[string]string `json:"extras,omitempty"`
}

// searchResponse is the paginated search result body. Count is the exact
// number of eligible candidates, also mirrored in the X-Total-Count header.
type searchResponse struct {
	Count  int          `json:"count"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Items  []searchItem `json:"items"`
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := intParam(w, q.Get("limit"), "limit")
	if !ok {
		return
	}
	offset, ok := intParam(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	req, err := request.New(
		q.Get("q"),
		limit,
		offset,
		scope.Scope(strings.ToUpper(q.Get("scope"))),
		q.Get("owner_id"),
		typesParam(q["types"]),
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]searchItem, len(page.Items()))
	for i := range page.Items() {
		items[i] = candidateToItem(&page.Items()[i])
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(page.Count()))
	writeJSON(w, http.StatusOK, searchResponse{
		Count:  page.Count(),
		Limit:  page.Limit(),
		Offset: page.Offset(),
		Items:  items,
	})
}

// knowledgeItem is the wire shape of one knowledge-base hit.
type knowledgeItem struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Source  string  `json:"source,omitempty"`
	Excerpt string  `json:"excerpt,omitempty"`
}

type knowledgeResponse struct {
	Count  int             `json:"count"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Items  []knowledgeItem `json:"items"`
}

// SearchKnowledge handles GET /api/v1/knowledge/search.
func (s *Server) SearchKnowledge(w http.ResponseWriter, r *http.Request) {
	if s.knowledge == nil {
		writeError(w, http.StatusNotImplemented, codeInternalError, "knowledge search is not configured")
		return
	}

	q := r.URL.Query()

	limit, ok := intParam(w, q.Get("limit"), "limit")
	if !ok {
		return
	}
	offset, ok := intParam(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	result, err := s.knowledge.Search(r.Context(), q.Get("q"), limit, offset)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]knowledgeItem, len(result.Items))
	for i := range result.Items {
		a := &result.Items[i]
		items[i] = knowledgeItem{
			ID:      a.ID(),
			Title:   a.Title(),
			Score:   a.Score(),
			Source:  a.Source(),
			Excerpt: a.Excerpt(),
		}
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(result.Count))
	writeJSON(w, http.StatusOK, knowledgeResponse{
		Count:  result.Count,
		Limit:  result.Limit,
		Offset: result.Offset,
		Items:  items,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func candidateToItem(c *candidate.Candidate) searchItem {
	return searchItem{
		Type:   string(c.Type()),
		ID:     c.ID(),
		Title:  c.Title(),
		Score:  c.Score(),
		Path:   c.Path(),
		Extras: c.Extras(),
	}
}

// intParam parses an optional integer query parameter. A missing value
// yields 0, which the request layer replaces with its defaults.
func intParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be an integer")
		return 0, false
	}
	return v, true
}

// typesParam parses repeated and comma-separated "types" values into
// entity-type tags. Unknown tags are rejected by the request layer.
func typesParam(raw []string) []entity.Type {
	var types []entity.Type
	for _, group := range raw {
		for _, t := range strings.Split(group, ",") {
			t = strings.TrimSpace(strings.ToLower(t))
			if t == "" {
				continue
			}
			types = append(types, entity.Type(t))
		}
	}
	return types
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrQueryTooShort,
		domain.ErrInvalidScope,
		domain.ErrOwnerRequired,
		domain.ErrUnknownEntityType,
		domain.ErrSearchTimeout,
		domain.ErrProviderFailure,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
