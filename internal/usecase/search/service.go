package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/harfsearch/internal/domain"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/request"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/result"
	"github.com/kailas-cloud/harfsearch/internal/metrics"
)

// Service runs the fuzzy search pipeline: patterns, per-source execution, merge.
type Service struct {
	patterns PatternBuilder
	sources  []Source
	exec     *Executor
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*options)

type options struct {
	perPatternLimit int
}

// WithPerPatternLimit overrides the row cap of a single source call.
func WithPerPatternLimit(n int) Option {
	return func(o *options) { o.perPatternLimit = n }
}

// New creates a search service over the given sources.
func New(patterns PatternBuilder, sources []Source, logger *zap.Logger, opts ...Option) *Service {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		patterns: patterns,
		sources:  sources,
		exec:     NewExecutor(o.perPatternLimit, logger),
		logger:   logger,
	}
}

// Search executes a validated request. Source failures are absorbed; an
// error is returned only when no source serves the scope or the context
// ended before anything was found.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.List, error) {
	scope := string(req.Scope())

	selected := make([]Source, 0, len(s.sources))
	for _, src := range s.sources {
		if req.Scope().Includes(src.Kind()) {
			selected = append(selected, src)
		}
	}
	if len(selected) == 0 {
		metrics.SearchRequestsTotal.WithLabelValues(scope, "error").Inc()
		return result.List{}, fmt.Errorf("scope %s: %w", scope, domain.ErrNoSources)
	}

	patterns := s.patterns.Build(req.Query())
	metrics.SearchPatterns.Observe(float64(len(patterns)))

	raw := s.exec.Execute(ctx, patterns, selected)
	list := Merge(req.Query(), raw)

	if list.Total() == 0 && ctx.Err() != nil {
		metrics.SearchRequestsTotal.WithLabelValues(scope, "error").Inc()
		return result.List{}, fmt.Errorf("%w: %w", domain.ErrSearchFailed, ctx.Err())
	}

	outcome := "ok"
	if list.Total() == 0 {
		outcome = "empty"
	}
	metrics.SearchRequestsTotal.WithLabelValues(scope, outcome).Inc()
	metrics.SearchResults.Observe(float64(list.Total()))

	s.logger.Debug("Search completed",
		zap.String("scope", scope),
		zap.Int("patterns", len(patterns)),
		zap.Int("results", list.Total()),
	)
	return list, nil
}
