package result

import "github.com/kailas-cloud/harfsearch/internal/domain/search/kind"

// Details carries the optional display fields. Tools use Description and
// Icon, articles use Excerpt and Image; both may carry a Category.
type Details struct {
	Description string
	Excerpt     string
	Icon        string
	Image       string
	Category    string
}

// Result is a single search hit, immutable once built.
type Result struct {
	id      int64
	kind    kind.Kind
	title   string
	slug    string
	details Details
}

// New creates a search result.
func New(id int64, k kind.Kind, title, slug string, details Details) Result {
	return Result{id: id, kind: k, title: title, slug: slug, details: details}
}

// ID returns the entity identifier within its source.
func (r *Result) ID() int64 { return r.id }

// Kind returns the entity type tag.
func (r *Result) Kind() kind.Kind { return r.kind }

// Title returns the display title.
func (r *Result) Title() string { return r.title }

// Slug returns the URL slug.
func (r *Result) Slug() string { return r.slug }

// Description returns the tool description, if any.
func (r *Result) Description() string { return r.details.Description }

// Excerpt returns the article excerpt, if any.
func (r *Result) Excerpt() string { return r.details.Excerpt }

// Icon returns the tool icon, if any.
func (r *Result) Icon() string { return r.details.Icon }

// Image returns the article image, if any.
func (r *Result) Image() string { return r.details.Image }

// Category returns the category label, if any.
func (r *Result) Category() string { return r.details.Category }

// List is the ordered outcome of one search request.
type List struct {
	results []Result
	query   string
}

// NewList creates a result list for query.
func NewList(query string, results []Result) List {
	return List{results: results, query: query}
}

// Results returns the ordered hits.
func (l *List) Results() []Result { return l.results }

// Query returns the query the list answers.
func (l *List) Query() string { return l.query }

// Total returns the number of hits.
func (l *List) Total() int { return len(l.results) }
