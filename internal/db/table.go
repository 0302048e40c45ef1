package db

import (
	"fmt"
	"regexp"
)

// ColumnType enumerates how a column takes part in search.
type ColumnType int

const (
	// ColumnText is matched by contains queries.
	ColumnText ColumnType = iota
	// ColumnTag is used for exact-match filters.
	ColumnTag
	// ColumnStored is returned but never queried.
	ColumnStored
)

// Column is one non-id column of a table.
type Column struct {
	Name string
	Type ColumnType
}

// TableDef describes an entity table. Every table has an implicit integer
// primary key named "id".
type TableDef struct {
	Name    string
	Columns []Column
}

var identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// ValidateIdentifier rejects names that are unsafe to splice into a
// command: lowercase ASCII letters, digits and underscores only.
func ValidateIdentifier(name string) error {
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// Validate checks the table name, column names and duplicates.
func (t *TableDef) Validate() error {
	if err := ValidateIdentifier(t.Name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: at least one column is required", ErrInvalidTable)
	}
	seen := map[string]struct{}{"id": {}}
	for _, c := range t.Columns {
		if err := ValidateIdentifier(c.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Names returns all column names in declaration order, id excluded.
func (t *TableDef) Names() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// NamesOf returns the names of columns of the given type.
func (t *TableDef) NamesOf(typ ColumnType) []string {
	var out []string
	for _, c := range t.Columns {
		if c.Type == typ {
			out = append(out, c.Name)
		}
	}
	return out
}
