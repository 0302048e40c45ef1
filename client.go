package harfsearch

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/harfsearch/internal/app"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/request"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/result"
	"github.com/kailas-cloud/harfsearch/internal/repository/entity"
)

// Client is the harfsearch SDK entry point.
type Client struct {
	app           *app.App
	maxQueryRunes int
}

// New creates a Client, connects to the store and ensures the tools and
// articles tables exist.
func New(opts ...Option) (*Client, error) {
	return NewContext(context.Background(), opts...)
}

// NewContext is New with a context bounding the connection phase.
func NewContext(ctx context.Context, opts ...Option) (*Client, error) {
	cc := &clientConfig{}
	for _, o := range opts {
		o.apply(cc)
	}

	cc.cfg.ApplyDefaults()
	if err := cc.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("harfsearch: %w", err)
	}

	a, err := app.New(ctx, &cc.cfg, cc.logger)
	if err != nil {
		return nil, fmt.Errorf("harfsearch: %w", err)
	}
	return &Client{app: a, maxQueryRunes: cc.cfg.Search.MaxQueryRunes}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.app != nil {
		c.app.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.app.Store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs a spelling-tolerant search. Tools come before articles; each
// source keeps the order in which its hits were first found. A failing
// source is skipped, so an error is returned only for invalid input or a
// cancelled context.
func (c *Client) Search(ctx context.Context, query string, t Type) ([]Result, error) {
	if t == "" {
		t = TypeAll
	}
	req, err := request.New(query, kind.Scope(t), c.maxQueryRunes)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	list, err := c.app.Search.Search(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return fromResultList(&list), nil
}

// SaveTool inserts or replaces a tool by id.
func (c *Client) SaveTool(ctx context.Context, t *Tool) error {
	return c.app.Tools.Save(ctx, &entity.ToolDTO{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Icon:        t.Icon,
		Category:    t.Category,
		Status:      t.Status,
	})
}

// SaveArticle inserts or replaces an article by id.
func (c *Client) SaveArticle(ctx context.Context, a *Article) error {
	return c.app.Articles.Save(ctx, &entity.ArticleDTO{
		ID:       a.ID,
		Title:    a.Title,
		Slug:     a.Slug,
		Excerpt:  a.Excerpt,
		Image:    a.Image,
		Category: a.Category,
		Status:   a.Status,
	})
}

// SeedFile loads tools and articles from a YAML fixtures file.
func (c *Client) SeedFile(ctx context.Context, path string) (tools, articles int, err error) {
	f, err := app.LoadFixtures(path)
	if err != nil {
		return 0, 0, err
	}
	res, err := c.app.Seed(ctx, &f)
	return res.Tools, res.Articles, err
}

func fromResultList(l *result.List) []Result {
	out := make([]Result, 0, l.Total())
	for _, r := range l.Results() {
		out = append(out, Result{
			ID:          r.ID(),
			Type:        string(r.Kind()),
			Title:       r.Title(),
			Slug:        r.Slug(),
			Description: r.Description(),
			Excerpt:     r.Excerpt(),
			Icon:        r.Icon(),
			Image:       r.Image(),
			Category:    r.Category(),
		})
	}
	return out
}
