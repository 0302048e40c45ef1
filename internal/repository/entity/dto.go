package entity

import (
	"strconv"

	"github.com/kailas-cloud/harfsearch/internal/db"
	"github.com/kailas-cloud/harfsearch/internal/domain/record"
)

// ToolDTO is the storage and fixture shape of a tool.
type ToolDTO struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
}

// ArticleDTO is the storage and fixture shape of an article.
type ArticleDTO struct {
	ID       int64  `yaml:"id"`
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	Excerpt  string `yaml:"excerpt"`
	Image    string `yaml:"image"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
}

func (d *ToolDTO) fields() map[string]string {
	status := d.Status
	if status == "" {
		status = StatusActive
	}
	return map[string]string{
		"name":        d.Name,
		"slug":        d.Slug,
		"description": d.Description,
		"icon":        d.Icon,
		"category":    d.Category,
		"status":      status,
	}
}

func (d *ArticleDTO) fields() map[string]string {
	status := d.Status
	if status == "" {
		status = StatusPublished
	}
	return map[string]string{
		"title":    d.Title,
		"slug":     d.Slug,
		"excerpt":  d.Excerpt,
		"image":    d.Image,
		"category": d.Category,
		"status":   status,
	}
}

func parseTool(id int64, m map[string]string) record.Record {
	return record.Tool{
		ID:          id,
		Name:        m["name"],
		Slug:        m["slug"],
		Description: m["description"],
		Icon:        m["icon"],
		Category:    m["category"],
	}
}

func parseArticle(id int64, m map[string]string) record.Record {
	return record.Article{
		ID:       id,
		Title:    m["title"],
		Slug:     m["slug"],
		Excerpt:  m["excerpt"],
		Image:    m["image"],
		Category: m["category"],
	}
}

// parseEntries converts store rows into records. Rows without a numeric
// id are skipped.
func parseEntries(entries []db.SearchEntry, parse func(int64, map[string]string) record.Record) []record.Record {
	out := make([]record.Record, 0, len(entries))
	for _, e := range entries {
		id, err := strconv.ParseInt(e.Key, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, parse(id, e.Fields))
	}
	return out
}
