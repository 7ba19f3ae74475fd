package errors

import "errors"

// CodeOf extracts the ErrorCode from an error chain. Returns the empty
// string if no TagError is found.
func CodeOf(err error) ErrorCode {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return tagErr.Code
	}
	return ""
}

// IsDecodeError reports whether the error chain contains a TagError
// with ErrCodeDecodeFailure.
func IsDecodeError(err error) bool {
	return CodeOf(err) == ErrCodeDecodeFailure
}

// WithMetadata attaches key-value context to a TagError, returning the
// same error for chaining. No-op when the chain has no TagError.
func WithMetadata(err error, key string, value interface{}) error {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		if tagErr.Metadata == nil {
			tagErr.Metadata = make(map[string]interface{})
		}
		tagErr.Metadata[key] = value
	}
	return err
}
