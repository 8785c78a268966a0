package dimgo

import (
	"github.com/hupe1980/dimgo/dimension"
)

// DefaultCacheSize is the number of parsed expressions an engine keeps.
const DefaultCacheSize = 1024

type options struct {
	catalog          *dimension.Catalog
	catalogFiles     []string
	cacheSize        int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithCatalog sets the catalog used to resolve derived dimension names.
//
// If nil is passed, dimension.DefaultCatalog is used.
func WithCatalog(c *dimension.Catalog) Option {
	return func(o *options) {
		if c == nil {
			c = dimension.DefaultCatalog()
		}
		o.catalog = c
	}
}

// WithCatalogFile extends the catalog with entries from a YAML file. It
// may be given several times; files are loaded in order and each may
// refer to names declared before it.
func WithCatalogFile(path string) Option {
	return func(o *options) {
		o.catalogFiles = append(o.catalogFiles, path)
	}
}

// WithCacheSize sets how many parsed expressions are cached.
// A size <= 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dimgo.BasicMetricsCollector{}
//	e, _ := dimgo.New(dimgo.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Resolves: %d, cached: %d\n", stats.ResolveCount, stats.ResolveCached)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging (uses NoopLogger).
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
