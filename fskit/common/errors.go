package common

import (
	"errors"
	"fmt"
	"log/slog"
)

// Common error types used across fskit packages
var (
	ErrNotFound      = errors.New("file does not exist")
	ErrAlreadyExists = errors.New("target already exists")
	ErrPathEmpty     = errors.New("path cannot be empty")
	ErrPathTooLong   = errors.New("path too long (max 4096 characters)")
	ErrPathInvalid   = errors.New("path contains invalid characters")
	ErrExhausted     = errors.New("exhausted candidate names for conflict resolution")
)

// NotFoundError wraps ErrNotFound with the offending path.
func NotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

// AlreadyExistsError wraps ErrAlreadyExists with the conflicting path.
func AlreadyExistsError(path string) error {
	return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	context := fmt.Sprintf(message, args...)
	return fmt.Errorf("%s: %w", context, err)
}

// HandleOperationError provides common error handling for file operations
func HandleOperationError(err error, operation, path string, logError bool) error {
	if err == nil {
		return nil
	}

	if logError {
		slog.Error("Operation failed",
			"operation", operation,
			"path", path,
			"error", err)
	}

	return WrapError(err, "failed to %s %s", operation, path)
}
