package harfsearch

import "github.com/kailas-cloud/harfsearch/internal/domain/search/kind"

// Type selects which entity sources a search touches.
type Type string

// Type constants.
const (
	TypeAll      Type = Type(kind.ScopeAll)
	TypeTools    Type = Type(kind.ScopeTools)
	TypeArticles Type = Type(kind.ScopeArticles)
)

// Result is one search hit. Optional fields are empty when the source has
// no value for them: Description and Icon for tools, Excerpt and Image for
// articles.
type Result struct {
	ID          int64
	Type        string // "tool" or "article"
	Title       string
	Slug        string
	Description string
	Excerpt     string
	Icon        string
	Image       string
	Category    string
}

// Tool is a searchable tool. An empty Status means active.
type Tool struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Icon        string
	Category    string
	Status      string
}

// Article is a searchable article. An empty Status means published.
type Article struct {
	ID       int64
	Title    string
	Slug     string
	Excerpt  string
	Image    string
	Category string
	Status   string
}
