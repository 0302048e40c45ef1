package redis

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/harfsearch/internal/db"
)

// EnsureTable creates the FT index backing a table. An existing index is
// left untouched.
func (s *Store) EnsureTable(ctx context.Context, def *db.TableDef) error {
	if err := def.Validate(); err != nil {
		return err
	}

	args := s.buildCreateArgs(def)
	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return nil
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}

// buildCreateArgs renders
//
//	<index> ON HASH PREFIX 1 <prefix> SCHEMA id NUMERIC SORTABLE <text> TEXT ... <tag> TAG ...
//
// Stored columns live in the hash but are not indexed. The mirrored id is
// sortable so searches page in id order.
func (s *Store) buildCreateArgs(def *db.TableDef) []string {
	args := []string{
		s.indexName(def.Name),
		"ON", "HASH",
		"PREFIX", "1", s.keyPrefix(def.Name),
		"SCHEMA",
		"id", "NUMERIC", "SORTABLE",
	}
	for _, c := range def.Columns {
		switch c.Type {
		case db.ColumnText:
			args = append(args, c.Name, "TEXT")
		case db.ColumnTag:
			args = append(args, c.Name, "TAG", "CASESENSITIVE")
		}
	}
	return args
}

// Put writes a row as a hash; existing fields not in the map are kept.
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

	// The id is mirrored into the hash so FT.SEARCH can RETURN it.
	cmd := s.b().Hset().Key(s.keyPrefix(table) + id).FieldValue().FieldValue("id", id)
	for _, k := range names {
		cmd = cmd.FieldValue(k, fields[k])
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	return nil
}
