package trace

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSpan_Disabled(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Init(ctx, Config{Enabled: false}))

	got, span := StartSpan(ctx, "noop")
	defer span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
	RecordError(span, errors.New("ignored"))
}

func TestStartSpan_Enabled(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, Init(ctx, Config{Enabled: true, ServiceName: "test", ServiceVersion: "0.0.1", Writer: &buf}))

	_, span := StartSpan(ctx, "recommendation.compute")
	assert.True(t, span.SpanContext().IsValid())
	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
	span.End()

	require.NoError(t, Shutdown(ctx))
	assert.Contains(t, buf.String(), "recommendation.compute")
	assert.Contains(t, buf.String(), "boom")

	// 停止後は no-op に戻る
	_, span = StartSpan(ctx, "after")
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, Shutdown(ctx))
}
