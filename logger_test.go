package dimgo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/dimgo/dimension"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.WithExpression("force / plane_angle").WithDimension(dimension.Torque).Info("resolved")
	assert.Contains(t, buf.String(), `expr="force / plane_angle"`)
	assert.Contains(t, buf.String(), `dimension="L M T^-2 QP^-1"`)

	buf.Reset()
	l.LogResolve(context.Background(), "force", dimension.Force, false, nil)
	assert.Empty(t, buf.String(), "resolve success is logged at debug")

	l.LogCatalog(context.Background(), "extra.yaml", 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "source=extra.yaml")

	NoopLogger().Error("discarded")
}
