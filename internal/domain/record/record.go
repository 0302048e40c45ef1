// Package record holds the raw rows entity sources return, one concrete
// type per source. Consumers switch on the concrete type to pick the
// optional display fields that belong to it.
package record

import "github.com/kailas-cloud/harfsearch/internal/domain/search/kind"

// Record is a raw row from an entity source. Implemented by Tool and Article only.
type Record interface {
	EntityID() int64
	Kind() kind.Kind
	isRecord()
}

// Tool is a row from the tools source.
type Tool struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Icon        string
	Category    string
}

// EntityID returns the tool id.
func (t Tool) EntityID() int64 { return t.ID }

// Kind returns kind.Tool.
func (Tool) Kind() kind.Kind { return kind.Tool }

func (Tool) isRecord() {}

// Article is a row from the articles source.
type Article struct {
	ID       int64
	Title    string
	Slug     string
	Excerpt  string
	Image    string
	Category string
}

// EntityID returns the article id.
func (a Article) EntityID() int64 { return a.ID }

// Kind returns kind.Article.
func (Article) Kind() kind.Kind { return kind.Article }

func (Article) isRecord() {}
