package search

import (
	"context"

	"github.com/kailas-cloud/harfsearch/internal/domain/record"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/pattern"
)

// Source is a read-only entity source searched by substring.
// Search returns an empty slice, not an error, when nothing matches.
type Source interface {
	Kind() kind.Kind
	Search(ctx context.Context, pattern string, limit int) ([]record.Record, error)
}

// PatternBuilder expands a query into the substring patterns to search.
type PatternBuilder interface {
	Build(query string) pattern.Set
}
