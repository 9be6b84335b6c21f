package uploads

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
)

// S3Config contains configuration for the S3 upload backend.
type S3Config struct {
	// Endpoint overrides the AWS endpoint (for MinIO, Localstack, etc.).
	Endpoint string

	// Region is the AWS region.
	Region string

	// Bucket is the bucket holding uploads. It must already exist.
	Bucket string

	// KeyPrefix is an optional prefix for all upload keys.
	// Example: "uploads/" results in keys like "uploads/photo.jpg".
	KeyPrefix string

	// AccessKeyID and SecretAccessKey are static credentials. When empty,
	// the default AWS credential chain is used.
	AccessKeyID     string
	SecretAccessKey string

	// ForcePathStyle uses path-style addressing (required by most
	// S3-compatible servers).
	ForcePathStyle bool

	// MaxRetries is the maximum number of retry attempts for transient
	// errors (default: 3).
	MaxRetries uint

	// InitialBackoff is the backoff before the first retry (default: 100ms).
	// Subsequent retries use exponential backoff up to MaxBackoff.
	InitialBackoff time.Duration

	// MaxBackoff is the maximum backoff between retries (default: 2s).
	MaxBackoff time.Duration
}

// S3Store serves uploads from an S3 bucket.
//
// Uploads occupy a flat namespace directly under the configured key prefix.
// Objects nested deeper than the prefix are ignored: they are not uploads and
// must never be candidates for deletion.
type S3Store struct {
	client    *s3.Client
	bucket    string
	keyPrefix string

	maxRetries     uint
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewS3Client creates an S3 client from configuration parameters.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return client, nil
}

// NewS3Store creates an S3-backed upload store and verifies bucket access.
// The bucket must already exist.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewS3StoreWithClient(ctx, client, cfg)
}

// NewS3StoreWithClient creates an S3-backed upload store using an existing
// client. Useful for tests that share a client with the harness.
func NewS3StoreWithClient(ctx context.Context, client *s3.Client, cfg S3Config) (*S3Store, error) {
	if client == nil {
		return nil, fmt.Errorf("S3 client is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	initialBackoff := cfg.InitialBackoff
	if initialBackoff == 0 {
		initialBackoff = 100 * time.Millisecond
	}
	maxBackoff := cfg.MaxBackoff
	if maxBackoff == 0 {
		maxBackoff = 2 * time.Second
	}

	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access bucket %q: %w", cfg.Bucket, err)
	}

	return &S3Store{
		client:         client,
		bucket:         cfg.Bucket,
		keyPrefix:      cfg.KeyPrefix,
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		maxBackoff:     maxBackoff,
	}, nil
}

// List returns the basenames of all objects directly under the key prefix.
// Listing is paginated, so buckets of any size work.
func (s *S3Store) List(ctx context.Context) ([]string, error) {
	var names []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.keyPrefix),
	})

	for paginator.HasMorePages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, err)
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			name := strings.TrimPrefix(*obj.Key, s.keyPrefix)
			// Skip the prefix marker object and anything nested deeper.
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			names = append(names, name)
		}
	}

	return names, nil
}

// Delete removes a single object, retrying transient errors with exponential
// backoff. Deleting a missing object is not an error: S3 DeleteObject is
// idempotent and the goal state is reached either way.
func (s *S3Store) Delete(ctx context.Context, filename string) error {
	if filename == "" || strings.Contains(filename, "/") {
		return fmt.Errorf("invalid upload filename: %q", filename)
	}

	key := s.keyPrefix + filename
	var lastErr error

	for attempt := 0; attempt <= int(s.maxRetries); attempt++ {
		if attempt > 0 {
			backoff := s.calculateBackoff(attempt - 1)
			logger.Debug("Retrying S3 delete",
				logger.Bucket(s.bucket),
				logger.Key(key),
				logger.Attempt(attempt),
				logger.MaxRetries(int(s.maxRetries)))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		_, lastErr = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})

		if lastErr == nil {
			return nil
		}

		if isNotFoundError(lastErr) {
			return nil
		}

		if !isRetryableError(lastErr) {
			break
		}
	}

	return fmt.Errorf("failed to delete object after %d attempts: %w", s.maxRetries+1, lastErr)
}

// Location returns the bucket URI.
func (s *S3Store) Location() string {
	return "s3://" + s.bucket + "/" + s.keyPrefix
}

// calculateBackoff returns the backoff duration for a given attempt.
func (s *S3Store) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 0; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// isRetryableError returns true if the error is transient and the operation
// should be retried.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Context errors are not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Network errors are retryable
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "Throttling", "ThrottlingException", "RequestThrottled", "SlowDown":
			return true
		case "InternalError", "ServiceUnavailable":
			return true
		case "NoSuchKey", "NotFound", "AccessDenied", "Forbidden", "InvalidRequest":
			return false
		}
	}

	errStr := err.Error()
	return strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "i/o timeout")
}

// isNotFoundError returns true if the error indicates the object doesn't exist.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if code == "NoSuchKey" || code == "NotFound" || code == "404" {
			return true
		}
	}

	return strings.Contains(err.Error(), "StatusCode: 404")
}

var _ Store = (*S3Store)(nil)
