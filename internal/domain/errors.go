package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery signals a missing or blank search query.
	ErrEmptyQuery = errors.New("empty query")
	// ErrQueryTooLong signals a query over the configured rune limit.
	ErrQueryTooLong = errors.New("query too long")
	// ErrInvalidScope signals an unknown entity type selector.
	ErrInvalidScope = errors.New("invalid search type")
	// ErrNoSources signals that no entity source serves the requested scope.
	ErrNoSources = errors.New("no entity source for scope")
	// ErrSearchFailed signals a failure outside per-source isolation.
	ErrSearchFailed = errors.New("search failed")
)

// QueryTooLongError wraps ErrQueryTooLong with the effective limit.
type QueryTooLongError struct {
	MaxRunes int
}

func (e *QueryTooLongError) Error() string {
	return fmt.Sprintf("%s: at most %d characters allowed", ErrQueryTooLong.Error(), e.MaxRunes)
}

func (e *QueryTooLongError) Unwrap() error { return ErrQueryTooLong }

// NewQueryTooLong creates a query length error.
func NewQueryTooLong(maxRunes int) error {
	return &QueryTooLongError{MaxRunes: maxRunes}
}
