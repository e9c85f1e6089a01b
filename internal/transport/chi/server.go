// Package chi exposes the discovery API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/campuslink/discovery/internal/domain"
	"github.com/campuslink/discovery/internal/domain/query"
	logpkg "github.com/campuslink/discovery/internal/logger"
	healthuc "github.com/campuslink/discovery/internal/usecase/health"
	searchuc "github.com/campuslink/discovery/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest        = "bad_request"
	codeUnauthorized      = "unauthorized"
	codeValidationFailed  = "validation_failed"
	codeSearchUnavailable = "search_unavailable"
	codeInternalError     = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server wires the search and health use cases to HTTP handlers.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrQueryRequired,
			http.StatusBadRequest, codeValidationFailed, "query text is required"),
		embeddingHandler,
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/search", s.Search)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// searchRequest is the inbound search payload. Keyword is a pointer so an
// omitted keyword (defaults to the query text) is distinguishable from an
// explicitly empty one (disables the lexical term).
type searchRequest struct {
	Query       string  `json:"query"`
	Keyword     *string `json:"keyword,omitempty"`
	Location    string  `json:"location,omitempty"`
	Skill       string  `json:"skill,omitempty"`
	Limit       int     `json:"limit,omitempty"`
	Offset      int     `json:"offset,omitempty"`
	RequesterID string  `json:"requester_id,omitempty"`
}

type searchResponse struct {
	Summary string         `json:"summary"`
	Results []searchResult `json:"results"`
	Meta    searchMeta     `json:"meta"`
}

type searchResult struct {
	Collection string  `json:"collection"`
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Context    string  `json:"context"`
	Bio        string  `json:"bio"`
	Score      float64 `json:"score"`
}

type searchMeta struct {
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
	Keyword  string        `json:"keyword"`
	Location string        `json:"location,omitempty"`
	Skill    string        `json:"skill,omitempty"`
	Weights  searchWeights `json:"weights"`
	MinScore float64       `json:"min_score"`
}

type searchWeights struct {
	Vector  float64 `json:"vector"`
	Lexical float64 `json:"lexical"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Search handles POST /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	keyword := req.Query
	if req.Keyword != nil {
		keyword = *req.Keyword
	}

	q, err := query.New(req.Query, keyword, req.Location, req.Skill, req.Limit, req.Offset, req.RequesterID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp, err := s.search.Search(r.Context(), &q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, responseToDTO(resp))
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

func responseToDTO(resp *searchuc.Response) searchResponse {
	results := make([]searchResult, len(resp.Results))
	for i, res := range resp.Results {
		results[i] = searchResult{
			Collection: string(res.Collection),
			ID:         res.ID,
			Title:      res.Title,
			Context:    res.Context,
			Bio:        res.Bio,
			Score:      res.Score,
		}
	}

	return searchResponse{
		Summary: resp.Summary,
		Results: results,
		Meta: searchMeta{
			Limit:    resp.Meta.Limit,
			Offset:   resp.Meta.Offset,
			Keyword:  resp.Meta.Keyword,
			Location: resp.Meta.Location,
			Skill:    resp.Meta.Skill,
			Weights:  searchWeights{Vector: resp.Meta.Weights.Vector, Lexical: resp.Meta.Weights.Lexical},
			MinScore: resp.Meta.MinScore,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code, msg string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// embeddingHandler collapses every embedding failure class into one generic
// unavailability answer. The detail stays in the server log.
func embeddingHandler(w http.ResponseWriter, err error) bool {
	if !domain.IsEmbeddingError(err) {
		return false
	}
	writeError(w, http.StatusServiceUnavailable, codeSearchUnavailable, "search module unavailable")
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	// The request-scoped logger carries the request id set by middleware.
	logpkg.FromContext(r.Context()).Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
