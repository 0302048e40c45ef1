package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	gochi "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/harfsearch/internal/domain"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/request"
	"github.com/kailas-cloud/harfsearch/internal/logger"
	"github.com/kailas-cloud/harfsearch/internal/metrics"
	healthuc "github.com/kailas-cloud/harfsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/harfsearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the search API.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxQueryRunes int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		search:        search,
		health:        health,
		logger:        logger,
		maxQueryRunes: request.DefaultMaxQueryRunes,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, CodeEmptyQuery),
		sentinelHandler(domain.ErrQueryTooLong, http.StatusBadRequest, CodeQueryTooLong),
		sentinelHandler(domain.ErrInvalidScope, http.StatusBadRequest, CodeInvalidType),
		sentinelHandler(domain.ErrNoSources, http.StatusInternalServerError, CodeSearchFailed),
		sentinelHandler(domain.ErrSearchFailed, http.StatusInternalServerError, CodeSearchFailed),
	}
	return s
}

// WithMaxQueryRunes sets the query length limit.
func (s *Server) WithMaxQueryRunes(n int) *Server {
	if n > 0 {
		s.maxQueryRunes = n
	}
	return s
}

// Router builds the chi router with the full middleware chain.
func (s *Server) Router(apiKeys []string) http.Handler {
	r := gochi.NewRouter()
	r.Use(JSONRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.Get("/search", s.Search)
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})
	return r
}

// Search handles GET /search?q=<text>&type=<tools|articles|all>.
// "query" is accepted as an alias of "q" and is used when q is blank.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	text := params.Get("q")
	if strings.TrimSpace(text) == "" {
		text = params.Get("query")
	}

	req, err := request.New(text, kind.Scope(params.Get("type")), s.maxQueryRunes)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	list, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseFromList(text, &list))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponseFromReport(report))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
		Results: []ResultItem{},
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	var tooLong *domain.QueryTooLongError
	if errors.As(err, &tooLong) {
		return tooLong.Error()
	}
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrQueryTooLong,
		domain.ErrInvalidScope,
		domain.ErrNoSources,
		domain.ErrSearchFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "search failed"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeSearchFailed, msg)
}
