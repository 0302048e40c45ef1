// Package pattern turns a query into the substring patterns sent to entity
// sources.
package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/harfsearch/internal/arabic"
)

// MinRunes is the shortest trimmed pattern worth sending to a store.
// Shorter ones match too much.
const MinRunes = 3

// Set is an insertion-ordered, duplicate-free list of substring patterns.
// The raw query and its stripped form, when valid, come first.
type Set []string

// Contains reports whether p is in the set.
func (s Set) Contains(p string) bool {
	for _, v := range s {
		if v == p {
			return true
		}
	}
	return false
}

// Builder composes pattern sets from a query.
type Builder struct {
	gen arabic.Generator
}

// NewBuilder creates a Builder using gen for spelling variants.
func NewBuilder(gen arabic.Generator) *Builder {
	return &Builder{gen: gen}
}

// Build returns the raw query, its punctuation-stripped form, its normalized
// form, and the spelling variants of the raw and stripped forms, deduplicated
// and filtered to patterns of at least MinRunes runes.
func (b *Builder) Build(query string) Set {
	stripped := arabic.StripPunctuation(query)
	normalized := arabic.Normalize(query)

	acc := newAccumulator()
	acc.add(query)
	if stripped != query {
		acc.add(stripped)
	}
	if normalized != strings.ToLower(query) {
		acc.add(normalized)
	}
	for _, v := range b.gen.Variations(query).Items()[1:] {
		acc.add(v)
	}
	if stripped != query {
		for _, v := range b.gen.Variations(stripped).Items() {
			acc.add(v)
		}
	}
	return acc.set
}

// Build composes patterns with arabic.DefaultLimits.
func Build(query string) Set {
	return NewBuilder(arabic.NewGenerator(arabic.DefaultLimits)).Build(query)
}

type accumulator struct {
	set  Set
	seen map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{set: Set{}, seen: make(map[string]struct{})}
}

func (a *accumulator) add(p string) {
	if utf8.RuneCountInString(strings.TrimSpace(p)) < MinRunes {
		return
	}
	if _, ok := a.seen[p]; ok {
		return
	}
	a.seen[p] = struct{}{}
	a.set = append(a.set, p)
}
