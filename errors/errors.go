// Package errors provides custom error types for the version-tag packages
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred
type ErrorCode string

const (
	ErrCodeDecodeFailure     ErrorCode = "DECODE_FAILURE"
	ErrCodeStorageFailure    ErrorCode = "STORAGE_FAILURE"
	ErrCodeValidationFailure ErrorCode = "VALIDATION_FAILURE"
)

// Operation represents the type of tag operation
type Operation string

const (
	OpDecode Operation = "decode"
	OpEncode Operation = "encode"
	OpSave   Operation = "save"
	OpLoad   Operation = "load"
	OpDelete Operation = "delete"
	OpList   Operation = "list"
	OpClose  Operation = "close"
)

// TagError represents an error that occurred while encoding, decoding
// or persisting tags
type TagError struct {
	// Operation during which the error occurred
	Op Operation

	// Component that generated the error (e.g., "sharedtag", "store")
	Component string

	// Underlying error
	Err error

	// Whether the operation can be retried
	Retryable bool

	// Error code for the error type
	Code ErrorCode

	// Metadata for additional context
	Metadata map[string]interface{}
}

func (e *TagError) Error() string {
	var msg string
	if e.Component != "" {
		msg = fmt.Sprintf("%s operation failed in %s component", e.Op, e.Component)
	} else {
		msg = fmt.Sprintf("%s operation failed", e.Op)
	}

	if e.Code != "" {
		msg += fmt.Sprintf(" [%s]", e.Code)
	}

	return msg + fmt.Sprintf(": %v", e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new decode-related TagError.
// Decode errors are never retryable: the input is malformed and will
// stay malformed.
func NewDecodeError(op Operation, cause error) *TagError {
	return &TagError{
		Code:      ErrCodeDecodeFailure,
		Op:        op,
		Component: "sharedtag",
		Err:       cause,
		Retryable: false,
	}
}

// NewStorageError creates a new storage-related TagError
func NewStorageError(op Operation, cause error) *TagError {
	return &TagError{
		Code:      ErrCodeStorageFailure,
		Op:        op,
		Component: "store",
		Err:       cause,
		Retryable: true,
	}
}

// NewValidationError creates a new validation-related TagError
func NewValidationError(op Operation, cause error) *TagError {
	return &TagError{
		Code:      ErrCodeValidationFailure,
		Op:        op,
		Err:       cause,
		Retryable: false,
	}
}

// New creates a new TagError
func New(op Operation, err error) *TagError {
	return &TagError{
		Op:  op,
		Err: err,
	}
}

// NewWithComponent creates a new TagError with component information
func NewWithComponent(op Operation, component string, err error) *TagError {
	return &TagError{
		Op:        op,
		Component: component,
		Err:       err,
	}
}

// IsRetryable checks if an error is a retryable TagError
func IsRetryable(err error) bool {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return tagErr.Retryable
	}
	return false
}
