package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/stockroom/internal/config"
)

func TestNewProvider_StdoutExportsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewProvider(config.TraceExporterStdout, "stockroom-test", WithWriter(&buf))
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "GET /api/products/:id")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, Shutdown(context.Background(), tp))
	assert.Contains(t, buf.String(), "GET /api/products/:id")
	assert.Contains(t, buf.String(), "stockroom-test")
}

func TestNewProvider_NoneStillRecords(t *testing.T) {
	tp, err := NewProvider(config.TraceExporterNone, "stockroom-test")
	require.NoError(t, err)
	defer Shutdown(context.Background(), tp)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.True(t, span.IsRecording())
	assert.True(t, span.SpanContext().IsValid())
}

func TestNewProvider_RejectsUnknownExporter(t *testing.T) {
	_, err := NewProvider("jaeger", "stockroom-test")
	assert.ErrorContains(t, err, "jaeger")
}
