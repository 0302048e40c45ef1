package sqlite

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/harfsearch/internal/db"
)

// EnsureTable creates the table and an index per tag column if missing.
// Existing tables are left as they are.
func (s *Store) EnsureTable(ctx context.Context, def *db.TableDef) error {
	if err := def.Validate(); err != nil {
		return err
	}

	cols := make([]string, 0, len(def.Columns)+1)
	cols = append(cols, "id INTEGER PRIMARY KEY")
	for _, c := range def.Columns {
		cols = append(cols, c.Name+" TEXT NOT NULL DEFAULT ''")
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", def.Name, strings.Join(cols, ", "))
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return &db.Error{Op: db.OpCreateTable, Err: err}
	}

	for _, tag := range def.NamesOf(db.ColumnTag) {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)", def.Name, tag, def.Name, tag)
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return &db.Error{Op: db.OpCreateIdx, Err: err}
		}
	}
	return nil
}

// Put inserts or replaces the row with the given id. Columns absent from
// fields keep their previous value on update.
func (s *Store) Put(ctx context.Context, table, id string, fields map[string]string) error {
	if err := db.ValidateIdentifier(table); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", db.ErrInvalidQuery)
	}

	names := make([]string, 0, len(fields))
	for k := range fields {
		if err := db.ValidateIdentifier(k); err != nil {
			return err
		}
		if k == "id" {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)

	cols := append([]string{"id"}, names...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	args := make([]any, 0, len(cols))
	args = append(args, id)
	for _, n := range names {
		args = append(args, fields[n])
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), placeholders)
	if len(names) > 0 {
		sets := make([]string, len(names))
		for i, n := range names {
			sets[i] = n + " = excluded." + n
		}
		stmt += " ON CONFLICT(id) DO UPDATE SET " + strings.Join(sets, ", ")
	} else {
		stmt += " ON CONFLICT(id) DO NOTHING"
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	return nil
}
