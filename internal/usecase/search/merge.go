package search

import (
	"sort"

	"github.com/kailas-cloud/harfsearch/internal/domain/record"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/result"
)

// Merge deduplicates raw rows per source by id (first occurrence wins),
// projects them into results and orders tools before articles. Within a
// source, results keep the order in which they were first found.
func Merge(query string, raw map[kind.Kind][]record.Record) result.List {
	kinds := make([]kind.Kind, 0, len(raw))
	total := 0
	for k, recs := range raw {
		kinds = append(kinds, k)
		total += len(recs)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].Rank() != kinds[j].Rank() {
			return kinds[i].Rank() < kinds[j].Rank()
		}
		return kinds[i] < kinds[j]
	})

	results := make([]result.Result, 0, total)
	for _, k := range kinds {
		seen := make(map[int64]struct{}, len(raw[k]))
		for _, rec := range raw[k] {
			id := rec.EntityID()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			if r, ok := project(rec); ok {
				results = append(results, r)
			}
		}
	}

	return result.NewList(query, results)
}

// project maps a raw record onto a result, carrying the optional fields
// its kind has.
func project(rec record.Record) (result.Result, bool) {
	switch r := rec.(type) {
	case record.Tool:
		return result.New(r.ID, kind.Tool, r.Name, r.Slug, result.Details{
			Description: r.Description,
			Icon:        r.Icon,
			Category:    r.Category,
		}), true
	case record.Article:
		return result.New(r.ID, kind.Article, r.Title, r.Slug, result.Details{
			Excerpt:  r.Excerpt,
			Image:    r.Image,
			Category: r.Category,
		}), true
	default:
		return result.Result{}, false
	}
}
