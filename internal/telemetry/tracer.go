package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys.
// HTTP keys follow OpenTelemetry semantic conventions; cleanup and storage
// keys use their own prefixes.
const (
	// ========================================================================
	// HTTP attributes
	// ========================================================================
	AttrHTTPMethod = "http.request.method"
	AttrHTTPRoute  = "http.route"
	AttrHTTPStatus = "http.response.status_code"
	AttrClientIP   = "client.address"

	// ========================================================================
	// User/Auth attributes
	// ========================================================================
	AttrUsername = "user.name"
	AttrUserRole = "user.role"

	// ========================================================================
	// Cleanup attributes
	// ========================================================================
	AttrTrigger    = "cleanup.trigger"  // manual, scheduled
	AttrUploaded   = "cleanup.uploaded" // files present in the upload store
	AttrReferenced = "cleanup.referenced"
	AttrOrphans    = "cleanup.orphans"
	AttrDeleted    = "cleanup.deleted"
	AttrFailed     = "cleanup.failed"
	AttrCollection = "db.collection.name"
	AttrFilename   = "file.name"

	// ========================================================================
	// Upload store attributes
	// ========================================================================
	AttrStoreBackend = "uploads.backend" // filesystem, s3
	AttrDirectory    = "uploads.directory"
	AttrBucket       = "storage.bucket"
	AttrKey          = "storage.key"
	AttrRegion       = "storage.region"
)

// Span names for operations.
// Format: <component>.<operation>
const (
	// Root span for HTTP request processing
	SpanHTTPRequest = "http.request"

	// Cleanup pipeline spans
	SpanCleanupRun     = "cleanup.run"
	SpanCleanupScan    = "cleanup.scan"
	SpanCleanupList    = "cleanup.list"
	SpanCleanupDelete  = "cleanup.delete"
	SpanCleanupPreview = "cleanup.preview"

	// Store spans
	SpanStoreHealthcheck = "store.healthcheck"
	SpanStoreQuery       = "store.query"

	// Upload store spans
	SpanUploadsList   = "uploads.list"
	SpanUploadsDelete = "uploads.delete"
)

// HTTPMethod returns an attribute for the HTTP request method
func HTTPMethod(method string) attribute.KeyValue {
	return attribute.String(AttrHTTPMethod, method)
}

// HTTPRoute returns an attribute for the matched route pattern
func HTTPRoute(route string) attribute.KeyValue {
	return attribute.String(AttrHTTPRoute, route)
}

// HTTPStatus returns an attribute for the response status code
func HTTPStatus(code int) attribute.KeyValue {
	return attribute.Int(AttrHTTPStatus, code)
}

// ClientIP returns an attribute for client IP address
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// Username returns an attribute for username
func Username(name string) attribute.KeyValue {
	return attribute.String(AttrUsername, name)
}

// UserRole returns an attribute for the authenticated user's role
func UserRole(role string) attribute.KeyValue {
	return attribute.String(AttrUserRole, role)
}

// Trigger returns an attribute for what initiated a cleanup run
func Trigger(t string) attribute.KeyValue {
	return attribute.String(AttrTrigger, t)
}

// Uploaded returns an attribute for the uploaded-file count
func Uploaded(n int) attribute.KeyValue {
	return attribute.Int(AttrUploaded, n)
}

// Referenced returns an attribute for the referenced-filename count
func Referenced(n int) attribute.KeyValue {
	return attribute.Int(AttrReferenced, n)
}

// Orphans returns an attribute for the orphan count
func Orphans(n int) attribute.KeyValue {
	return attribute.Int(AttrOrphans, n)
}

// Deleted returns an attribute for the deleted-file count
func Deleted(n int) attribute.KeyValue {
	return attribute.Int(AttrDeleted, n)
}

// Failed returns an attribute for the per-file failure count
func Failed(n int) attribute.KeyValue {
	return attribute.Int(AttrFailed, n)
}

// Collection returns an attribute for a database collection/table name
func Collection(name string) attribute.KeyValue {
	return attribute.String(AttrCollection, name)
}

// Filename returns an attribute for a file name
func Filename(name string) attribute.KeyValue {
	return attribute.String(AttrFilename, name)
}

// StoreBackend returns an attribute for the upload store backend type
func StoreBackend(backend string) attribute.KeyValue {
	return attribute.String(AttrStoreBackend, backend)
}

// Directory returns an attribute for the uploads directory
func Directory(dir string) attribute.KeyValue {
	return attribute.String(AttrDirectory, dir)
}

// Bucket returns an attribute for S3 bucket name
func Bucket(name string) attribute.KeyValue {
	return attribute.String(AttrBucket, name)
}

// StorageKey returns an attribute for S3 object key
func StorageKey(key string) attribute.KeyValue {
	return attribute.String(AttrKey, key)
}

// Region returns an attribute for cloud region
func Region(region string) attribute.KeyValue {
	return attribute.String(AttrRegion, region)
}

// StartHTTPSpan starts a server span for an incoming HTTP request.
func StartHTTPSpan(ctx context.Context, method, route string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		HTTPMethod(method),
		HTTPRoute(route),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanHTTPRequest, trace.WithSpanKind(trace.SpanKindServer), trace.WithAttributes(allAttrs...))
}

// StartCleanupSpan starts a span for a cleanup pipeline stage.
// The trigger attribute is attached so traces can be filtered by origin.
func StartCleanupSpan(ctx context.Context, name, trigger string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		Trigger(trigger),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, name, trace.WithAttributes(allAttrs...))
}

// StartStoreSpan starts a span for a database operation.
func StartStoreSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, "store."+operation, trace.WithAttributes(attrs...))
}

// StartUploadsSpan starts a span for an upload store operation.
func StartUploadsSpan(ctx context.Context, operation, backend string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		StoreBackend(backend),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, "uploads."+operation, trace.WithAttributes(allAttrs...))
}
