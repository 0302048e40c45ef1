package chi

import (
	"github.com/kailas-cloud/harfsearch/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/harfsearch/internal/usecase/health"
)

// ErrorCode is a machine-readable error code in error responses.
type ErrorCode string

// Error codes.
const (
	CodeEmptyQuery       ErrorCode = "EMPTY_QUERY"
	CodeQueryTooLong     ErrorCode = "QUERY_TOO_LONG"
	CodeInvalidType      ErrorCode = "INVALID_TYPE"
	CodeSearchFailed     ErrorCode = "SEARCH_FAILED"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
)

// ResultItem is one search hit. Optional fields are omitted when empty.
type ResultItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
}

// SearchResponse is the body of a successful GET /search.
type SearchResponse struct {
	Success bool         `json:"success"`
	Results []ResultItem `json:"results"`
	Query   string       `json:"query"`
	Total   int          `json:"total"`
}

// ErrorBody describes a failure.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   ErrorBody    `json:"error"`
	Results []ResultItem `json:"results"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Driver string            `json:"driver,omitempty"`
	Checks map[string]string `json:"checks"`
}

func resultToItem(r *result.Result) ResultItem {
	return ResultItem{
		ID:          r.ID(),
		Title:       r.Title(),
		Slug:        r.Slug(),
		Type:        string(r.Kind()),
		Description: r.Description(),
		Excerpt:     r.Excerpt(),
		Icon:        r.Icon(),
		Image:       r.Image(),
		Category:    r.Category(),
	}
}

func searchResponseFromList(query string, l *result.List) SearchResponse {
	items := make([]ResultItem, 0, l.Total())
	for _, r := range l.Results() {
		items = append(items, resultToItem(&r))
	}
	return SearchResponse{
		Success: true,
		Results: items,
		Query:   query,
		Total:   len(items),
	}
}

func healthResponseFromReport(r healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{
		Status: string(r.Status),
		Driver: r.Driver,
		Checks: checks,
	}
}
