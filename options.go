package rubik

import (
	"log/slog"

	"github.com/SeamusWaldron/rubik/internal/action"
	"github.com/SeamusWaldron/rubik/internal/logging"
)

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	logger *slog.Logger
	tables *TableCache
}

func defaultConfig() *config {
	return &config{
		logger: logging.NewDiscardLogger(),
		tables: defaultTables,
	}
}

// WithLogger sets the logger used for table builds, scrambles and moves.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTableCache makes the cube take its move table from tables instead of
// the package-wide cache.
func WithTableCache(tables *TableCache) Option {
	return func(c *config) {
		if tables != nil {
			c.tables = tables
		}
	}
}

// TableCache holds precomputed move tables by cube size. Cubes of the same
// size created with the same cache share one table.
type TableCache struct {
	cache *action.Cache
}

// NewTableCache creates an empty cache. workers bounds how many slices are
// computed concurrently when a table is built; 0 uses GOMAXPROCS.
func NewTableCache(workers int) *TableCache {
	var opts []action.BuildOption
	if workers > 0 {
		opts = append(opts, action.WithWorkers(workers))
	}
	return &TableCache{cache: action.NewCache(opts...)}
}

// Has reports whether the table for size is already built.
func (t *TableCache) Has(size int) bool {
	return t.cache.Has(size)
}

// Warm builds the tables for sizes ahead of use.
func (t *TableCache) Warm(sizes ...int) error {
	for _, size := range sizes {
		if _, err := t.cache.Get(size); err != nil {
			return err
		}
	}
	return nil
}

var defaultTables = &TableCache{cache: action.DefaultCache}
