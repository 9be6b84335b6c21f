package logger

import (
	"log/slog"
	"time"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so that log
// aggregation and querying stay uniform across the API, the store and
// the cleanup subsystem.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// HTTP Request
	// ========================================================================
	KeyRequestID = "request_id" // Per-request identifier (chi middleware)
	KeyMethod    = "method"     // HTTP method
	KeyPath      = "path"       // Request path
	KeyStatus    = "status"     // HTTP response status code
	KeyBytes     = "bytes"      // HTTP response body size in bytes
	KeyClientIP  = "client_ip"  // Client IP address
	KeyUserAgent = "user_agent" // Client user agent

	// ========================================================================
	// Identity
	// ========================================================================
	KeyUserID   = "user_id"  // Authenticated user ID
	KeyUsername = "username" // Username
	KeyRole     = "role"     // User role (admin, user)

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyOperation  = "operation"   // Sub-operation type for complex operations
	KeyTrigger    = "trigger"     // What initiated a cleanup run (manual, scheduled)

	// ========================================================================
	// Uploads & Cleanup
	// ========================================================================
	KeyFilename   = "filename"   // File name (basename, no directory)
	KeyDirectory  = "directory"  // Uploads directory path
	KeyBackend    = "backend"    // Uploads backend type: filesystem, s3
	KeyCollection = "collection" // Database collection/table being scanned
	KeyUploaded   = "uploaded"   // Number of files present in uploads storage
	KeyReferenced = "referenced" // Number of filenames referenced by records
	KeyOrphans    = "orphans"    // Number of orphaned files detected
	KeyDeleted    = "deleted"    // Number of files deleted
	KeyFailed     = "failed"     // Number of per-file deletion failures
	KeySchedule   = "schedule"   // Cron expression for the cleanup scheduler
	KeyNextRun    = "next_run"   // Next scheduled cleanup fire time

	// ========================================================================
	// Object Storage (S3 backend)
	// ========================================================================
	KeyBucket     = "bucket"      // S3 bucket name
	KeyKey        = "key"         // Object key
	KeyRegion     = "region"      // Cloud region
	KeyAttempt    = "attempt"     // Retry attempt number
	KeyMaxRetries = "max_retries" // Maximum retry attempts
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// ----------------------------------------------------------------------------
// Distributed Tracing
// ----------------------------------------------------------------------------

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// ----------------------------------------------------------------------------
// HTTP Request
// ----------------------------------------------------------------------------

// RequestID returns a slog.Attr for the per-request identifier
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// Method returns a slog.Attr for the HTTP method
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// Path returns a slog.Attr for the request path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Status returns a slog.Attr for the HTTP response status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// Bytes returns a slog.Attr for the HTTP response body size
func Bytes(n int) slog.Attr {
	return slog.Int(KeyBytes, n)
}

// ClientIP returns a slog.Attr for client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// UserAgent returns a slog.Attr for the client user agent
func UserAgent(ua string) slog.Attr {
	return slog.String(KeyUserAgent, ua)
}

// ----------------------------------------------------------------------------
// Identity
// ----------------------------------------------------------------------------

// UserID returns a slog.Attr for the authenticated user ID
func UserID(id string) slog.Attr {
	return slog.String(KeyUserID, id)
}

// Username returns a slog.Attr for username
func Username(name string) slog.Attr {
	return slog.String(KeyUsername, name)
}

// Role returns a slog.Attr for the user role
func Role(role string) slog.Attr {
	return slog.String(KeyRole, role)
}

// ----------------------------------------------------------------------------
// Operation Metadata
// ----------------------------------------------------------------------------

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Operation returns a slog.Attr for sub-operation type
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Trigger returns a slog.Attr for what initiated a cleanup run
func Trigger(t string) slog.Attr {
	return slog.String(KeyTrigger, t)
}

// ----------------------------------------------------------------------------
// Uploads & Cleanup
// ----------------------------------------------------------------------------

// Filename returns a slog.Attr for a file name (basename)
func Filename(name string) slog.Attr {
	return slog.String(KeyFilename, name)
}

// Directory returns a slog.Attr for the uploads directory path
func Directory(dir string) slog.Attr {
	return slog.String(KeyDirectory, dir)
}

// Backend returns a slog.Attr for the uploads backend type
func Backend(b string) slog.Attr {
	return slog.String(KeyBackend, b)
}

// Collection returns a slog.Attr for a database collection/table name
func Collection(name string) slog.Attr {
	return slog.String(KeyCollection, name)
}

// Uploaded returns a slog.Attr for the number of uploaded files
func Uploaded(n int) slog.Attr {
	return slog.Int(KeyUploaded, n)
}

// Referenced returns a slog.Attr for the number of referenced filenames
func Referenced(n int) slog.Attr {
	return slog.Int(KeyReferenced, n)
}

// Orphans returns a slog.Attr for the number of orphaned files
func Orphans(n int) slog.Attr {
	return slog.Int(KeyOrphans, n)
}

// Deleted returns a slog.Attr for the number of deleted files
func Deleted(n int) slog.Attr {
	return slog.Int(KeyDeleted, n)
}

// Failed returns a slog.Attr for the number of per-file failures
func Failed(n int) slog.Attr {
	return slog.Int(KeyFailed, n)
}

// Schedule returns a slog.Attr for the scheduler cron expression
func Schedule(expr string) slog.Attr {
	return slog.String(KeySchedule, expr)
}

// NextRun returns a slog.Attr for the next scheduled fire time
func NextRun(t time.Time) slog.Attr {
	return slog.Time(KeyNextRun, t)
}

// ----------------------------------------------------------------------------
// Object Storage
// ----------------------------------------------------------------------------

// Bucket returns a slog.Attr for S3 bucket name
func Bucket(name string) slog.Attr {
	return slog.String(KeyBucket, name)
}

// Key returns a slog.Attr for object key in cloud storage
func Key(k string) slog.Attr {
	return slog.String(KeyKey, k)
}

// Region returns a slog.Attr for cloud region
func Region(r string) slog.Attr {
	return slog.String(KeyRegion, r)
}

// Attempt returns a slog.Attr for retry attempt number
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// MaxRetries returns a slog.Attr for maximum retry attempts
func MaxRetries(n int) slog.Attr {
	return slog.Int(KeyMaxRetries, n)
}
