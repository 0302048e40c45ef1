package harfsearch

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/harfsearch/internal/config"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	cfg    config.Config
	logger *zap.Logger
}

// WithSQLite stores records in a SQLite file. Use ":memory:" for a
// throwaway database. This is the default driver.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Database.Driver = config.DriverSQLite
		c.cfg.Database.Path = path
	})
}

// WithRedis stores records in Redis hashes indexed by RediSearch.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Database.Driver = config.DriverRedis
		c.cfg.Database.Addrs = []string{addr}
		c.cfg.Database.Password = password
	})
}

// WithKeyPrefix namespaces Redis keys and index names.
// Default: "harfsearch:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Database.KeyPrefix = prefix
	})
}

// WithVariationLimits bounds spelling variant generation.
// Defaults: 8 rewritten alef positions, 256 variants.
func WithVariationLimits(maxOccurrences, maxVariants int) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Search.Variations.MaxOccurrences = maxOccurrences
		c.cfg.Search.Variations.MaxVariants = maxVariants
	})
}

// WithPerPatternLimit caps rows fetched per source and pattern.
// Default: 10.
func WithPerPatternLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Search.PerPatternLimit = n
	})
}

// WithMaxQueryRunes sets the longest accepted query in characters.
// Default: 200.
func WithMaxQueryRunes(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Search.MaxQueryRunes = n
	})
}

// WithReadinessTimeout sets how long New waits for the store, in seconds.
// Default: 10.
func WithReadinessTimeout(sec int) Option {
	return optionFunc(func(c *clientConfig) {
		c.cfg.Database.ReadinessTimeout = sec
	})
}

// WithLogger enables structured logging of source failures.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
