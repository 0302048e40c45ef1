package harfsearch

import "github.com/kailas-cloud/harfsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrEmptyQuery   = domain.ErrEmptyQuery
	ErrQueryTooLong = domain.ErrQueryTooLong
	ErrInvalidType  = domain.ErrInvalidScope
	ErrSearchFailed = domain.ErrSearchFailed
)
