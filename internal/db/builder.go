package db

import "strings"

// TableBuilder is a fluent builder for table definitions.
type TableBuilder struct {
	def TableDef
}

// NewTable starts building a table definition.
func NewTable(name string) *TableBuilder {
	return &TableBuilder{def: TableDef{Name: name}}
}

// Text adds a column matched by contains queries.
func (b *TableBuilder) Text(names ...string) *TableBuilder {
	return b.add(ColumnText, names)
}

// Tag adds an exact-match filter column.
func (b *TableBuilder) Tag(names ...string) *TableBuilder {
	return b.add(ColumnTag, names)
}

// Stored adds a column that is returned but never queried.
func (b *TableBuilder) Stored(names ...string) *TableBuilder {
	return b.add(ColumnStored, names)
}

func (b *TableBuilder) add(typ ColumnType, names []string) *TableBuilder {
	for _, n := range names {
		b.def.Columns = append(b.def.Columns, Column{Name: n, Type: typ})
	}
	return b
}

// Build validates and returns the table definition.
func (b *TableBuilder) Build() (*TableDef, error) {
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	def := b.def
	def.Columns = append([]Column(nil), b.def.Columns...)
	return &def, nil
}

// MustBuild calls Build and panics on error.
func (b *TableBuilder) MustBuild() *TableDef {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

// String returns a debug representation of the table.
func (t *TableDef) String() string {
	parts := []string{"TABLE", t.Name, "(id"}
	for _, c := range t.Columns {
		switch c.Type {
		case ColumnText:
			parts = append(parts, c.Name+":text")
		case ColumnTag:
			parts = append(parts, c.Name+":tag")
		case ColumnStored:
			parts = append(parts, c.Name+":stored")
		}
	}
	return strings.Join(parts, " ") + ")"
}
