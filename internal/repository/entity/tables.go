package entity

import "github.com/kailas-cloud/harfsearch/internal/db"

// Table names.
const (
	ToolsTableName    = "tools"
	ArticlesTableName = "articles"
)

// Visibility values of the status column.
const (
	StatusActive    = "active"
	StatusPublished = "published"
)

// ToolsTable is the tools schema: name and description are matched.
var ToolsTable = db.NewTable(ToolsTableName).
	Text("name", "description").
	Tag("status").
	Stored("slug", "icon", "category").
	MustBuild()

// ArticlesTable is the articles schema: title and excerpt are matched.
var ArticlesTable = db.NewTable(ArticlesTableName).
	Text("title", "excerpt").
	Tag("status").
	Stored("slug", "image", "category").
	MustBuild()
