package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/harfsearch/internal/domain"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
)

// DefaultMaxQueryRunes is the query length limit used when none is configured.
const DefaultMaxQueryRunes = 200

// Request is a validated search query.
type Request struct {
	query string
	scope kind.Scope
}

// New trims and validates search parameters.
// An empty scope means kind.ScopeAll; maxRunes <= 0 means DefaultMaxQueryRunes.
func New(query string, scope kind.Scope, maxRunes int) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, domain.ErrEmptyQuery
	}
	if maxRunes <= 0 {
		maxRunes = DefaultMaxQueryRunes
	}
	if utf8.RuneCountInString(query) > maxRunes {
		return Request{}, domain.NewQueryTooLong(maxRunes)
	}
	if scope == "" {
		scope = kind.ScopeAll
	}
	if !scope.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", domain.ErrInvalidScope, scope)
	}
	return Request{query: query, scope: scope}, nil
}

// Query returns the trimmed query text.
func (r *Request) Query() string { return r.query }

// Scope returns the entity type selector.
func (r *Request) Scope() kind.Scope { return r.scope }
