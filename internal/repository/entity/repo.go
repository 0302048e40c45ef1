// Package entity adapts record store tables into searchable entity sources.
package entity

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/harfsearch/internal/db"
	"github.com/kailas-cloud/harfsearch/internal/domain/record"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
)

// store is the consumer interface for entity tables (ISP).
type store interface {
	EnsureTable(ctx context.Context, def *db.TableDef) error
	Put(ctx context.Context, table, id string, fields map[string]string) error
	SearchContains(ctx context.Context, q *db.ContainsQuery) (*db.SearchResult, error)
}

// table binds a schema to the kind, visibility filter and row parser of one source.
type table struct {
	store  store
	def    *db.TableDef
	kind   kind.Kind
	status string
	parse  func(int64, map[string]string) record.Record
}

func (t *table) search(ctx context.Context, pattern string, limit int) ([]record.Record, error) {
	res, err := t.store.SearchContains(ctx, &db.ContainsQuery{
		Table:        t.def.Name,
		Fields:       t.def.NamesOf(db.ColumnText),
		Pattern:      pattern,
		Equals:       map[string]string{"status": t.status},
		ReturnFields: t.def.Names(),
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", t.def.Name, err)
	}
	if res == nil || len(res.Entries) == 0 {
		return nil, nil
	}
	return parseEntries(res.Entries, t.parse), nil
}

func (t *table) ensure(ctx context.Context) error {
	if err := t.store.EnsureTable(ctx, t.def); err != nil {
		return fmt.Errorf("ensure table %s: %w", t.def.Name, err)
	}
	return nil
}

func (t *table) put(ctx context.Context, id int64, fields map[string]string) error {
	if id <= 0 {
		return fmt.Errorf("%s: id must be positive, got %d", t.def.Name, id)
	}
	if err := t.store.Put(ctx, t.def.Name, strconv.FormatInt(id, 10), fields); err != nil {
		return fmt.Errorf("put %s/%d: %w", t.def.Name, id, err)
	}
	return nil
}

// Tools is the tools entity source. Only active tools are searchable.
type Tools struct {
	t table
}

// NewTools creates the tools source.
func NewTools(s store) *Tools {
	return &Tools{t: table{
		store:  s,
		def:    ToolsTable,
		kind:   kind.Tool,
		status: StatusActive,
		parse:  parseTool,
	}}
}

// Kind returns kind.Tool.
func (r *Tools) Kind() kind.Kind { return r.t.kind }

// Search returns up to limit active tools whose name or description
// contains pattern. No match is an empty slice, not an error.
func (r *Tools) Search(ctx context.Context, pattern string, limit int) ([]record.Record, error) {
	return r.t.search(ctx, pattern, limit)
}

// EnsureSchema creates the tools table if missing.
func (r *Tools) EnsureSchema(ctx context.Context) error {
	return r.t.ensure(ctx)
}

// Save inserts or updates a tool. An empty status defaults to active.
func (r *Tools) Save(ctx context.Context, d *ToolDTO) error {
	return r.t.put(ctx, d.ID, d.fields())
}

// Articles is the articles entity source. Only published articles are searchable.
type Articles struct {
	t table
}

// NewArticles creates the articles source.
func NewArticles(s store) *Articles {
	return &Articles{t: table{
		store:  s,
		def:    ArticlesTable,
		kind:   kind.Article,
		status: StatusPublished,
		parse:  parseArticle,
	}}
}

// Kind returns kind.Article.
func (r *Articles) Kind() kind.Kind { return r.t.kind }

// Search returns up to limit published articles whose title or excerpt
// contains pattern.
func (r *Articles) Search(ctx context.Context, pattern string, limit int) ([]record.Record, error) {
	return r.t.search(ctx, pattern, limit)
}

// EnsureSchema creates the articles table if missing.
func (r *Articles) EnsureSchema(ctx context.Context) error {
	return r.t.ensure(ctx)
}

// Save inserts or updates an article. An empty status defaults to published.
func (r *Articles) Save(ctx context.Context, d *ArticleDTO) error {
	return r.t.put(ctx, d.ID, d.fields())
}
