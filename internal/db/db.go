package db

import (
	"context"
	"time"
)

// Store is the record store facade used by the composition root.
// Consumers depend on the narrow sub-interfaces.
type Store interface {
	Pinger
	Writer
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Writer creates tables and stores rows. Used for seeding and tests; the
// search path is read-only.
type Writer interface {
	EnsureTable(ctx context.Context, def *TableDef) error
	Put(ctx context.Context, table, id string, fields map[string]string) error
}

// Searcher runs substring ("contains") searches.
// An empty result is returned, never an error, when nothing matches.
type Searcher interface {
	SearchContains(ctx context.Context, q *ContainsQuery) (*SearchResult, error)
}
