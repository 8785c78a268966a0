package dimgo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/dimgo/dimension"
	"github.com/hupe1980/dimgo/internal/cache"
)

// Engine resolves dimension expressions against a catalog of named
// derived dimensions. It is safe for concurrent use.
type Engine struct {
	catalog *dimension.Catalog
	cache   *cache.LRU[string, dimension.Vector]
	group   singleflight.Group
	metrics MetricsCollector
	logger  *Logger
	closed  atomic.Bool
}

// New creates an engine.
func New(optFns ...Option) (*Engine, error) {
	opts := options{
		catalog:          dimension.DefaultCatalog(),
		cacheSize:        DefaultCacheSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cat := opts.catalog
	for _, path := range opts.catalogFiles {
		next, err := loadCatalogFile(path, cat, opts.logger)
		opts.logger.LogCatalog(context.Background(), path, catalogLen(next), err)
		if err != nil {
			return nil, err
		}
		cat = next
	}

	return &Engine{
		catalog: cat,
		cache:   cache.NewLRU[string, dimension.Vector](opts.cacheSize),
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

func loadCatalogFile(path string, parent *dimension.Catalog, logger *Logger) (*dimension.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := dimension.LoadCatalog(f,
		dimension.WithParent(parent),
		dimension.WithCatalogLogger(logger.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, path, err)
	}
	return c, nil
}

func catalogLen(c *dimension.Catalog) int {
	if c == nil {
		return 0
	}
	return c.Len()
}

// Catalog returns the catalog the engine resolves names with.
func (e *Engine) Catalog() *dimension.Catalog {
	return e.catalog
}

// Resolve evaluates a dimension expression such as "force / plane_angle"
// to its canonical vector.
func (e *Engine) Resolve(ctx context.Context, expr string) (dimension.Vector, error) {
	if e.closed.Load() {
		return dimension.Vector{}, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return dimension.Vector{}, err
	}

	start := time.Now()
	key := normalize(expr)
	v, cached, err := e.resolve(key)
	e.metrics.RecordResolve(time.Since(start), cached, err)
	e.logger.LogResolve(ctx, key, v, cached, err)
	if err != nil {
		return dimension.Vector{}, translateError(err)
	}
	return v, nil
}

func (e *Engine) resolve(key string) (dimension.Vector, bool, error) {
	if v, ok := e.cache.Get(key); ok {
		return v, true, nil
	}
	res, err, _ := e.group.Do(key, func() (any, error) {
		v, err := dimension.Parse(key, e.catalog.Resolver())
		if err != nil {
			return nil, err
		}
		e.cache.Set(key, v)
		return v, nil
	})
	if err != nil {
		return dimension.Vector{}, false, err
	}
	return res.(dimension.Vector), false, nil
}

// normalize collapses runs of whitespace so equivalent spellings share a
// cache entry.
func normalize(expr string) string {
	return strings.Join(strings.Fields(expr), " ")
}

// Check resolves both expressions and reports *ErrDimensionMismatch if
// they differ.
func (e *Engine) Check(ctx context.Context, want, got string) error {
	start := time.Now()
	err := e.check(ctx, want, got)

	var dm *ErrDimensionMismatch
	e.metrics.RecordCheck(time.Since(start), errors.As(err, &dm), err)
	e.logger.LogCheck(ctx, want, got, err)
	return err
}

func (e *Engine) check(ctx context.Context, want, got string) error {
	wv, err := e.Resolve(ctx, want)
	if err != nil {
		return err
	}
	gv, err := e.Resolve(ctx, got)
	if err != nil {
		return err
	}
	return translateError(dimension.Require(wv, gv))
}

// TermInfo describes one term of a dimension.
type TermInfo struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Exponent int    `json:"exponent" yaml:"exponent"`
}

// Description is a human-oriented view of a dimension.
type Description struct {
	Expr      string     `json:"expr,omitempty" yaml:"expr,omitempty"`
	Dimension string     `json:"dimension" yaml:"dimension"`
	Terms     []TermInfo `json:"terms" yaml:"terms"`
	Names     []string   `json:"names,omitempty" yaml:"names,omitempty"`
}

// Describe lists the terms of v and every catalog name whose dimension
// equals v.
func (e *Engine) Describe(v dimension.Vector) Description {
	terms := v.Terms()
	d := Description{
		Dimension: v.String(),
		Terms:     make([]TermInfo, len(terms)),
		Names:     e.catalog.Match(v),
	}
	for i, t := range terms {
		d.Terms[i] = TermInfo{Name: t.Base.Name(), Symbol: t.Base.Symbol(), Exponent: t.Exp}
	}
	return d
}

// CacheStats returns expression cache hit and miss counts.
func (e *Engine) CacheStats() (hits, misses int64) {
	hits, misses, _ = e.cache.Stats()
	return hits, misses
}

// Close releases cached state. Further calls return ErrClosed.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	e.cache.Purge()
	return nil
}
