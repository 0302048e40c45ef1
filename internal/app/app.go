// Package app wires the record store, entity sources and search services
// together. It is the composition root shared by the HTTP server, the CLI
// and the embeddable client.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/harfsearch/internal/arabic"
	"github.com/kailas-cloud/harfsearch/internal/config"
	"github.com/kailas-cloud/harfsearch/internal/db"
	dbRedis "github.com/kailas-cloud/harfsearch/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/harfsearch/internal/db/sqlite"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/pattern"
	"github.com/kailas-cloud/harfsearch/internal/repository/entity"
	healthuc "github.com/kailas-cloud/harfsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/harfsearch/internal/usecase/search"
)

// App holds the wired services over one record store.
type App struct {
	Store    db.Store
	Tools    *entity.Tools
	Articles *entity.Articles
	Search   *searchuc.Service
	Health   *healthuc.Service
	Driver   string
}

// OpenStore creates the record store for the configured driver.
func OpenStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return dbSQLite.NewStore(dbSQLite.Config{Path: cfg.Path})
	case config.DriverRedis:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.Addrs,
			Password:  cfg.Password,
			KeyPrefix: cfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// New opens the store, waits for it, ensures both entity tables exist and
// builds the search and health services.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := OpenStore(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	a, err := Wire(ctx, store, cfg.Database.Driver, &cfg.Search, logger)
	if err != nil {
		store.Close()
		return nil, err
	}
	return a, nil
}

// Wire builds an App over an already open store.
func Wire(ctx context.Context, store db.Store, driver string, cfg *config.SearchConfig, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tools := entity.NewTools(store)
	articles := entity.NewArticles(store)
	if err := tools.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if err := articles.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	builder := pattern.NewBuilder(arabic.NewGenerator(cfg.Variations))
	searchSvc := searchuc.New(builder, []searchuc.Source{tools, articles}, logger,
		searchuc.WithPerPatternLimit(cfg.PerPatternLimit),
	)

	return &App{
		Store:    store,
		Tools:    tools,
		Articles: articles,
		Search:   searchSvc,
		Health:   healthuc.New(store, driver),
		Driver:   driver,
	}, nil
}

// Close releases the record store.
func (a *App) Close() {
	a.Store.Close()
}
