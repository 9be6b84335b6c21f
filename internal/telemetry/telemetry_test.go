package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "wizzzey-api", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Enabled = false

	shutdown, err := Init(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// Should be able to call shutdown without error
	err = shutdown(ctx)
	assert.NoError(t, err)

	// Should not be enabled
	assert.False(t, IsEnabled())
}

func TestTracerReturnsNoOp(t *testing.T) {
	// Reset state
	tracer = nil
	enabled = false

	// Without initialization, should return no-op tracer
	tr := Tracer()
	require.NotNil(t, tr)
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()

	// Even without initialization, StartSpan should work (no-op)
	newCtx, span := StartSpan(ctx, "cleanup.run")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)

	// Should be able to end the span
	span.End()
}

func TestSpanFromContext(t *testing.T) {
	ctx := context.Background()

	// Should return a span even without active span
	span := SpanFromContext(ctx)
	require.NotNil(t, span)
}

func TestAddEvent(t *testing.T) {
	ctx := context.Background()

	// Should not panic with no active span
	require.NotPanics(t, func() {
		AddEvent(ctx, "cleanup.orphans_found")
	})
}

func TestRecordError(t *testing.T) {
	ctx := context.Background()

	// Should not panic with nil error
	require.NotPanics(t, func() {
		RecordError(ctx, nil)
	})

	// Should not panic with error
	require.NotPanics(t, func() {
		RecordError(ctx, errors.New("scan failed"))
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	// Should not panic
	require.NotPanics(t, func() {
		SetStatus(ctx, codes.Ok, "success")
	})

	require.NotPanics(t, func() {
		SetStatus(ctx, codes.Error, "failed")
	})
}

func TestSetAttributes(t *testing.T) {
	ctx := context.Background()

	// Should not panic
	require.NotPanics(t, func() {
		SetAttributes(ctx, ClientIP("192.168.1.1"))
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()

	// Without active span, should return empty string
	traceID := TraceID(ctx)
	assert.Equal(t, "", traceID)
}

func TestSpanID(t *testing.T) {
	ctx := context.Background()

	// Without active span, should return empty string
	spanID := SpanID(ctx)
	assert.Equal(t, "", spanID)
}

func TestAttributeHelpers(t *testing.T) {
	t.Run("HTTPMethod", func(t *testing.T) {
		attr := HTTPMethod("POST")
		assert.Equal(t, AttrHTTPMethod, string(attr.Key))
		assert.Equal(t, "POST", attr.Value.AsString())
	})

	t.Run("HTTPRoute", func(t *testing.T) {
		attr := HTTPRoute("/api/cleanup/trigger")
		assert.Equal(t, AttrHTTPRoute, string(attr.Key))
		assert.Equal(t, "/api/cleanup/trigger", attr.Value.AsString())
	})

	t.Run("HTTPStatus", func(t *testing.T) {
		attr := HTTPStatus(200)
		assert.Equal(t, AttrHTTPStatus, string(attr.Key))
		assert.Equal(t, int64(200), attr.Value.AsInt64())
	})

	t.Run("ClientIP", func(t *testing.T) {
		attr := ClientIP("192.168.1.100")
		assert.Equal(t, AttrClientIP, string(attr.Key))
		assert.Equal(t, "192.168.1.100", attr.Value.AsString())
	})

	t.Run("Username", func(t *testing.T) {
		attr := Username("admin")
		assert.Equal(t, AttrUsername, string(attr.Key))
		assert.Equal(t, "admin", attr.Value.AsString())
	})

	t.Run("Trigger", func(t *testing.T) {
		attr := Trigger("scheduled")
		assert.Equal(t, AttrTrigger, string(attr.Key))
		assert.Equal(t, "scheduled", attr.Value.AsString())
	})

	t.Run("Orphans", func(t *testing.T) {
		attr := Orphans(12)
		assert.Equal(t, AttrOrphans, string(attr.Key))
		assert.Equal(t, int64(12), attr.Value.AsInt64())
	})

	t.Run("Deleted", func(t *testing.T) {
		attr := Deleted(11)
		assert.Equal(t, AttrDeleted, string(attr.Key))
		assert.Equal(t, int64(11), attr.Value.AsInt64())
	})

	t.Run("Collection", func(t *testing.T) {
		attr := Collection("products")
		assert.Equal(t, AttrCollection, string(attr.Key))
		assert.Equal(t, "products", attr.Value.AsString())
	})

	t.Run("Filename", func(t *testing.T) {
		attr := Filename("photo.png")
		assert.Equal(t, AttrFilename, string(attr.Key))
		assert.Equal(t, "photo.png", attr.Value.AsString())
	})

	t.Run("StoreBackend", func(t *testing.T) {
		attr := StoreBackend("s3")
		assert.Equal(t, AttrStoreBackend, string(attr.Key))
		assert.Equal(t, "s3", attr.Value.AsString())
	})

	t.Run("Bucket", func(t *testing.T) {
		attr := Bucket("wizzzey-uploads")
		assert.Equal(t, AttrBucket, string(attr.Key))
		assert.Equal(t, "wizzzey-uploads", attr.Value.AsString())
	})

	t.Run("StorageKey", func(t *testing.T) {
		attr := StorageKey("uploads/photo.png")
		assert.Equal(t, AttrKey, string(attr.Key))
		assert.Equal(t, "uploads/photo.png", attr.Value.AsString())
	})
}

func TestStartCleanupSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartCleanupSpan(ctx, SpanCleanupRun, "manual")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()

	// With additional attributes
	newCtx2, span2 := StartCleanupSpan(ctx, SpanCleanupDelete, "scheduled", Orphans(4))
	require.NotNil(t, newCtx2)
	require.NotNil(t, span2)
	span2.End()
}

func TestStartStoreSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartStoreSpan(ctx, "query", Collection("products"))
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()
}

func TestStartUploadsSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartUploadsSpan(ctx, "list", "filesystem")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()

	newCtx2, span2 := StartUploadsSpan(ctx, "delete", "s3", Bucket("wizzzey-uploads"), StorageKey("photo.png"))
	require.NotNil(t, newCtx2)
	require.NotNil(t, span2)
	span2.End()
}
