package ledger

import "errors"

var (
	ErrMalformedLine = errors.New("malformed pairing line")
	ErrInvalidPath   = errors.New("invalid path") // key escapes the store root
	ErrNotFound      = errors.New("ledger not found")

	ErrFailedToReadFile        = errors.New("failed to read file")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3-specific errors
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
