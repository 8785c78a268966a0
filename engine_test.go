package dimgo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dimgo/dimension"
)

func writeCatalog(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolve", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)
		defer e.Close()

		tests := []struct {
			expr string
			want dimension.Vector
		}{
			{"force / plane_angle", dimension.Torque},
			{"torque plane_angle", dimension.Force},
			{"mass * length^2 / time^2", dimension.Energy},
			{"work", dimension.Energy},
			{"1", dimension.Dimensionless},
			{"L M T^-2 QP^-1", dimension.Torque},
		}
		for _, tt := range tests {
			got, err := e.Resolve(ctx, tt.expr)
			require.NoError(t, err, tt.expr)
			assert.Equal(t, tt.want, got, tt.expr)
		}
	})

	t.Run("Cache", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)
		defer e.Close()

		_, err = e.Resolve(ctx, "force   /  plane_angle")
		require.NoError(t, err)
		_, err = e.Resolve(ctx, "force / plane_angle")
		require.NoError(t, err)

		hits, misses := e.CacheStats()
		assert.Equal(t, int64(1), hits)
		assert.Equal(t, int64(1), misses)
	})

	t.Run("CacheDisabled", func(t *testing.T) {
		e, err := New(WithCacheSize(0))
		require.NoError(t, err)
		defer e.Close()

		for range 3 {
			v, err := e.Resolve(ctx, "energy")
			require.NoError(t, err)
			assert.Equal(t, dimension.Energy, v)
		}
		hits, _ := e.CacheStats()
		assert.Zero(t, hits)
	})

	t.Run("Errors", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)
		defer e.Close()

		_, err = e.Resolve(ctx, "force / flux_capacitance")
		assert.ErrorIs(t, err, ErrUnknownDimension)
		assert.ErrorIs(t, err, dimension.ErrUnknownName)

		_, err = e.Resolve(ctx, "force / (length")
		assert.ErrorIs(t, err, ErrInvalidExpression)
		var se *dimension.ErrSyntax
		assert.True(t, errors.As(err, &se))

		_, err = e.Resolve(ctx, "(L^4611686018427387904)^4")
		assert.ErrorIs(t, err, ErrInvalidExpression)
		assert.ErrorIs(t, err, dimension.ErrExponentOverflow)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = e.Resolve(cancelled, "force")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Check", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)
		defer e.Close()

		require.NoError(t, e.Check(ctx, "force", "torque * plane_angle"))
		require.NoError(t, e.Check(ctx, "energy", "heat"))

		err = e.Check(ctx, "energy", "torque")
		var dm *ErrDimensionMismatch
		require.True(t, errors.As(err, &dm))
		assert.Equal(t, dimension.Energy, dm.Expected)
		assert.Equal(t, dimension.Torque, dm.Actual)
		assert.EqualError(t, err, "dimension mismatch: expected L^2 M T^-2, got L M T^-2 QP^-1")

		var inner *dimension.ErrDimensionMismatch
		assert.True(t, errors.As(errors.Unwrap(err), &inner))

		err = e.Check(ctx, "energy", "nope")
		assert.ErrorIs(t, err, ErrUnknownDimension)
		assert.False(t, errors.As(err, &dm))
	})

	t.Run("Describe", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)
		defer e.Close()

		d := e.Describe(dimension.Torque)
		assert.Equal(t, "L M T^-2 QP^-1", d.Dimension)
		assert.Equal(t, []string{"torque"}, d.Names)
		assert.Equal(t, []TermInfo{
			{Name: "length", Symbol: "L", Exponent: 1},
			{Name: "mass", Symbol: "M", Exponent: 1},
			{Name: "time", Symbol: "T", Exponent: -2},
			{Name: "plane_angle", Symbol: "QP", Exponent: -1},
		}, d.Terms)

		d = e.Describe(dimension.Dimensionless)
		assert.Equal(t, "dimensionless", d.Dimension)
		assert.Empty(t, d.Terms)
	})

	t.Run("Close", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)

		require.NoError(t, e.Close())
		assert.ErrorIs(t, e.Close(), ErrClosed)

		_, err = e.Resolve(ctx, "force")
		assert.ErrorIs(t, err, ErrClosed)
		assert.ErrorIs(t, e.Check(ctx, "force", "force"), ErrClosed)
	})
}

func TestEngineCatalogFile(t *testing.T) {
	ctx := context.Background()

	t.Run("Extends", func(t *testing.T) {
		first := writeCatalog(t, `
dimensions:
  - name: jerk
    expr: acceleration / time
`)
		second := writeCatalog(t, `
dimensions:
  - name: snap
    expr: jerk / time
`)
		e, err := New(WithCatalogFile(first), WithCatalogFile(second))
		require.NoError(t, err)
		defer e.Close()

		v, err := e.Resolve(ctx, "snap")
		require.NoError(t, err)
		assert.Equal(t, dimension.MustReduce(dimension.Length.Exp(1), dimension.Time.Exp(-4)), v)

		_, ok := e.Catalog().Lookup("torque")
		assert.True(t, ok)
		assert.Greater(t, e.Catalog().Len(), dimension.DefaultCatalog().Len())
	})

	t.Run("Invalid", func(t *testing.T) {
		tests := []struct {
			name string
			src  string
		}{
			{"Malformed", "dimensions:\n  - name: bad\n    terms: [[length, 1], [length, 2]]\n"},
			{"UnknownBase", "dimensions:\n  - name: bad\n    terms: [[charm, 1]]\n"},
			{"Redeclared", "dimensions:\n  - name: torque\n    expr: energy\n"},
			{"UnknownName", "dimensions:\n  - name: bad\n    expr: flux / time\n"},
			{"Syntax", "dimensions: [\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := New(WithCatalogFile(writeCatalog(t, tt.src)))
				assert.ErrorIs(t, err, ErrInvalidCatalog)
			})
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := New(WithCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEngineConcurrentResolve(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	defer e.Close()

	exprs := []string{"force / plane_angle", "energy / time", "mass velocity", "torque plane_angle"}
	want := []dimension.Vector{dimension.Torque, dimension.Power, dimension.Momentum, dimension.Force}

	var g errgroup.Group
	for w := range 16 {
		g.Go(func() error {
			for i := range 100 {
				k := (w + i) % len(exprs)
				v, err := e.Resolve(context.Background(), exprs[k])
				if err != nil {
					return err
				}
				if v != want[k] {
					return errors.New("unexpected dimension for " + exprs[k])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	hits, misses := e.CacheStats()
	assert.Equal(t, int64(1600), hits+misses)
	assert.LessOrEqual(t, misses, int64(16*len(exprs)))
}

func TestEngineMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}

	e, err := New(WithMetricsCollector(metrics))
	require.NoError(t, err)
	defer e.Close()

	_, _ = e.Resolve(ctx, "force")
	_, _ = e.Resolve(ctx, "force")
	_, _ = e.Resolve(ctx, "unknown_thing")
	_ = e.Check(ctx, "force", "force")
	_ = e.Check(ctx, "force", "energy")
	_ = e.Check(ctx, "force", "(")

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.CheckMismatches)
	assert.Equal(t, int64(1), stats.CheckErrors)
	assert.Equal(t, int64(3), stats.CheckCount)
	// Three direct resolves plus two per check.
	assert.Equal(t, int64(9), stats.ResolveCount)
	assert.Equal(t, int64(2), stats.ResolveErrors)
	assert.Equal(t, int64(5), stats.ResolveCached)
}

type countingCollector struct {
	mu       sync.Mutex
	resolves int
	checks   int
}

func (c *countingCollector) RecordResolve(_ time.Duration, _ bool, _ error) {
	c.mu.Lock()
	c.resolves++
	c.mu.Unlock()
}

func (c *countingCollector) RecordCheck(_ time.Duration, _ bool, _ error) {
	c.mu.Lock()
	c.checks++
	c.mu.Unlock()
}

func TestEngineCustomCollector(t *testing.T) {
	c := &countingCollector{}
	e, err := New(WithMetricsCollector(c), WithMetricsCollector(nil), WithMetricsCollector(c))
	require.NoError(t, err)
	defer e.Close()

	require.NoError(t, e.Check(context.Background(), "area", "length^2"))
	assert.Equal(t, 2, c.resolves)
	assert.Equal(t, 1, c.checks)
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(WithLogger(NewJSONLogger(&buf, slog.LevelDebug)))
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Resolve(context.Background(), "force / plane_angle")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"resolve completed"`)
	assert.Contains(t, buf.String(), `"dimension":"L M T^-2 QP^-1"`)

	buf.Reset()
	_ = e.Check(context.Background(), "energy", "torque")
	assert.Contains(t, buf.String(), `"msg":"dimension check failed"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestWithNilOptions(t *testing.T) {
	e, err := New(WithCatalog(nil), WithLogger(nil))
	require.NoError(t, err)
	defer e.Close()

	assert.Same(t, dimension.DefaultCatalog(), e.Catalog())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "force / plane_angle", normalize("  force\t/\nplane_angle "))
	assert.Equal(t, "", normalize("   "))
}
