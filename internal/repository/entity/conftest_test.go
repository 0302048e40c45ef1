package entity

import (
	"context"

	"github.com/kailas-cloud/harfsearch/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	ensureTableFn    func(ctx context.Context, def *db.TableDef) error
	putFn            func(ctx context.Context, table, id string, fields map[string]string) error
	searchContainsFn func(ctx context.Context, q *db.ContainsQuery) (*db.SearchResult, error)
}

func (m *mockStore) EnsureTable(ctx context.Context, def *db.TableDef) error {
	if m.ensureTableFn != nil {
		return m.ensureTableFn(ctx, def)
	}
	return nil
}

func (m *mockStore) Put(ctx context.Context, table, id string, fields map[string]string) error {
	if m.putFn != nil {
		return m.putFn(ctx, table, id, fields)
	}
	return nil
}

func (m *mockStore) SearchContains(ctx context.Context, q *db.ContainsQuery) (*db.SearchResult, error) {
	if m.searchContainsFn != nil {
		return m.searchContainsFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}
