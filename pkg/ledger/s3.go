package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Store.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store implements Store for Amazon S3 and S3-compatible services.
// It is safe for concurrent use.
type S3Store struct {
	client  S3Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// S3Config contains configuration for S3 storage.
type S3Config struct {
	Bucket         string `env:"LEDGER_S3_BUCKET"`
	Region         string `env:"LEDGER_S3_REGION" envDefault:"us-east-1"`
	Prefix         string `env:"LEDGER_S3_PREFIX"`
	AccessKeyID    string `env:"LEDGER_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"LEDGER_S3_SECRET_KEY"`
	Endpoint       string `env:"LEDGER_S3_ENDPOINT"`         // S3-compatible services
	ForcePathStyle bool   `env:"LEDGER_S3_FORCE_PATH_STYLE"` // MinIO and friends
}

// S3Option configures S3Store.
type S3Option func(*s3Options)

type s3Options struct {
	s3Client S3Client
	timeout  time.Duration
}

// WithS3Client sets a pre-configured S3 client.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithS3Timeout bounds each request. Zero leaves the caller's deadline in charge.
func WithS3Timeout(timeout time.Duration) S3Option {
	return func(o *s3Options) {
		o.timeout = timeout
	}
}

// NewS3Store creates a new S3-backed store.
func NewS3Store(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Store, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  prefix,
		timeout: options.timeout,
	}, nil
}

// Put uploads data under key.
func (s *S3Store) Put(ctx context.Context, key string, data []byte) error {
	objectKey, err := s.objectKey(key)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return classifyS3Error(err, "put ledger")
	}
	return nil
}

// Get downloads the object stored under key.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	objectKey, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get ledger")
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Location returns the s3:// URI of key.
func (s *S3Store) Location(key string) string {
	return fmt.Sprintf("s3://%s/%s%s", s.bucket, s.prefix, strings.TrimPrefix(key, "/"))
}

func (s *S3Store) objectKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return s.prefix + key, nil
}

func (s *S3Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

// classifyS3Error converts S3 errors to package errors.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", ErrRequestTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
