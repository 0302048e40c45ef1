package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/harfsearch/internal/db"
)

// SearchContains runs
//
//	SELECT id, <return> FROM <table>
//	WHERE (<f1> LIKE ? ESCAPE '\' OR ...) AND <k> = ? ...
//	ORDER BY id LIMIT ?
func (s *Store) SearchContains(ctx context.Context, q *db.ContainsQuery) (*db.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	stmt, args := buildContainsQuery(q)
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer func() { _ = rows.Close() }()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	return &db.SearchResult{Total: len(entries), Entries: entries}, nil
}

func buildContainsQuery(q *db.ContainsQuery) (string, []any) {
	like := "%" + escapeLike(q.Pattern) + "%"

	matches := make([]string, len(q.Fields))
	args := make([]any, 0, len(q.Fields)+len(q.Equals)+1)
	for i, f := range q.Fields {
		matches[i] = f + ` LIKE ? ESCAPE '\'`
		args = append(args, like)
	}
	where := "(" + strings.Join(matches, " OR ") + ")"

	keys := make([]string, 0, len(q.Equals))
	for k := range q.Equals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		where += " AND " + k + " = ?"
		args = append(args, q.Equals[k])
	}

	selectCols := "*"
	if len(q.ReturnFields) > 0 {
		selectCols = "id, " + strings.Join(q.ReturnFields, ", ")
	}

	args = append(args, q.Limit)
	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY id LIMIT ?", selectCols, q.Table, where)
	return stmt, args
}

func scanEntries(rows *sql.Rows) ([]db.SearchEntry, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var entries []db.SearchEntry
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		entry := db.SearchEntry{Fields: make(map[string]string, len(cols))}
		for i, c := range cols {
			if c == "id" {
				entry.Key = values[i].String
				continue
			}
			entry.Fields[c] = values[i].String
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return entries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
