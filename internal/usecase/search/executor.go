package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/harfsearch/internal/domain/record"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/pattern"
	"github.com/kailas-cloud/harfsearch/internal/logger"
	"github.com/kailas-cloud/harfsearch/internal/metrics"
)

// DefaultPerPatternLimit caps the rows fetched per (source, pattern) call.
const DefaultPerPatternLimit = 10

// Executor fans a pattern set out over sources. Each source runs on its
// own goroutine and walks the patterns in order; a failed call is logged
// and skipped so one bad pattern or source never fails the search.
type Executor struct {
	perPatternLimit int
	logger          *zap.Logger
}

// NewExecutor creates an executor. A non-positive limit means DefaultPerPatternLimit.
func NewExecutor(perPatternLimit int, logger *zap.Logger) *Executor {
	if perPatternLimit <= 0 {
		perPatternLimit = DefaultPerPatternLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{perPatternLimit: perPatternLimit, logger: logger}
}

// Execute returns the raw rows per source kind, in pattern order and
// possibly with repeats across patterns.
func (e *Executor) Execute(ctx context.Context, patterns pattern.Set, sources []Source) map[kind.Kind][]record.Record {
	rows := make([][]record.Record, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			rows[i] = e.searchSource(ctx, src, patterns)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	out := make(map[kind.Kind][]record.Record, len(sources))
	for i, src := range sources {
		if len(rows[i]) > 0 {
			out[src.Kind()] = append(out[src.Kind()], rows[i]...)
		}
	}
	return out
}

func (e *Executor) searchSource(ctx context.Context, src Source, patterns pattern.Set) []record.Record {
	source := string(src.Kind())
	log := logger.FromContextOr(ctx, e.logger)
	start := time.Now()
	defer func() {
		metrics.SourceQueryDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	}()

	var out []record.Record
	for _, p := range patterns {
		if ctx.Err() != nil {
			log.Debug("Search cancelled",
				zap.String("source", source),
				zap.Error(ctx.Err()),
			)
			break
		}

		recs, err := e.query(ctx, src, p)
		if err != nil {
			metrics.SourceErrorsTotal.WithLabelValues(source).Inc()
			log.Warn("Source query failed",
				zap.String("source", source),
				zap.String("pattern", p),
				zap.Error(err),
			)
			continue
		}
		out = append(out, recs...)
	}
	return out
}

// query runs one source call. A panic inside the source is turned into an
// error so it is handled like any other failed call.
func (e *Executor) query(ctx context.Context, src Source, p string) (recs []record.Record, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			recs, err = nil, fmt.Errorf("source %s panicked: %v", src.Kind(), rvr)
		}
	}()
	return src.Search(ctx, p, e.perPatternLimit)
}
