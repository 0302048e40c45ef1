package db

import (
	"fmt"
	"strings"
)

// ContainsQuery selects rows where at least one of Fields contains Pattern
// as a contiguous substring and every Equals pair matches exactly.
type ContainsQuery struct {
	Table        string
	Fields       []string
	Pattern      string
	Equals       map[string]string
	ReturnFields []string
	Limit        int
}

// Validate checks identifiers and bounds before the query reaches a store.
func (q *ContainsQuery) Validate() error {
	if err := ValidateIdentifier(q.Table); err != nil {
		return err
	}
	if len(q.Fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", ErrInvalidQuery)
	}
	if strings.TrimSpace(q.Pattern) == "" {
		return fmt.Errorf("%w: pattern is required", ErrInvalidQuery)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidQuery)
	}
	for _, f := range q.Fields {
		if err := ValidateIdentifier(f); err != nil {
			return err
		}
	}
	for _, f := range q.ReturnFields {
		if err := ValidateIdentifier(f); err != nil {
			return err
		}
	}
	for k := range q.Equals {
		if err := ValidateIdentifier(k); err != nil {
			return err
		}
	}
	return nil
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single row. Key is the row id without any store prefix.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
