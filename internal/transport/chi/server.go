// Package chi is the HTTP transport for the participant search API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/request"
	"github.com/recruitr-hq/recruitr/internal/metrics"
	healthuc "github.com/recruitr-hq/recruitr/internal/usecase/health"
	searchuc "github.com/recruitr-hq/recruitr/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search, participant and admin endpoints.
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
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrParticipantNotFound, http.StatusNotFound, codeParticipantNotFound),
		sentinelHandler(domain.ErrEmbeddingRateLimited, http.StatusTooManyRequests, codeRateLimited),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderErr),
		sentinelHandler(domain.ErrIndexNotReady, http.StatusServiceUnavailable, codeSearchIndexNotReady),
		sentinelHandler(domain.ErrVectorSearchUnavailable, http.StatusServiceUnavailable, codeSearchUnavailable),
	}
	return s
}

// Mount registers all routes on the given router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/researcher/search", s.SearchParticipants)
	r.Get("/researcher/participants/{id}", s.GetParticipant)
	r.Post("/admin/reload", s.ReloadIndex)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchParticipants handles POST /researcher/search.
func (s *Server) SearchParticipants(w http.ResponseWriter, r *http.Request) {
	var req searchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topK := 0
	if req.TopK != nil {
		topK = *req.TopK
	}

	searchReq, err := request.New(req.Query, topK, filtersFromDTO(req.Filters))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.search.Search(r.Context(), &searchReq)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("none", "error").Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.SearchRequestsTotal.WithLabelValues(resp.Method, "ok").Inc()
	metrics.SearchDuration.WithLabelValues(resp.Method).Observe(resp.RetrievalTimeMs / 1000.0)
	metrics.SearchResultsReturned.Observe(float64(resp.Count))

	writeJSON(w, http.StatusOK, searchResponseToDTO(resp))
}

// GetParticipant handles GET /researcher/participants/{id}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "participant id is required")
		return
	}

	p, err := s.search.Participant(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, participantToDTO(p))
}

// ReloadIndex handles POST /admin/reload. Rebuilds the in-memory search
// snapshot from the participant store.
func (s *Server) ReloadIndex(w http.ResponseWriter, r *http.Request) {
	count, err := s.search.Reload(r.Context())
	if err != nil {
		metrics.SnapshotReloadsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.SnapshotReloadsTotal.WithLabelValues("ok").Inc()
	metrics.SnapshotParticipants.Set(float64(count))

	writeJSON(w, http.StatusOK, reloadResponseDTO{
		Status:       "reloaded",
		Participants: count,
	})
}

// HealthCheck handles GET /health. Degraded reports 503 so load balancers
// drain the instance while keyword search may still work.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponseDTO{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrParticipantNotFound,
		domain.ErrEmbeddingRateLimited,
		domain.ErrEmbeddingProviderError,
		domain.ErrIndexNotReady,
		domain.ErrVectorSearchUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
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
