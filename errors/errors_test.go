package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTagErrorMessage(t *testing.T) {
	cause := errors.New("invalid length")

	tests := []struct {
		name string
		err  *TagError
		want []string
	}{
		{
			name: "with component and code",
			err:  NewDecodeError(OpDecode, cause),
			want: []string{"decode operation failed", "sharedtag", "DECODE_FAILURE", "invalid length"},
		},
		{
			name: "without component",
			err:  NewValidationError(OpSave, cause),
			want: []string{"save operation failed", "VALIDATION_FAILURE"},
		},
		{
			name: "bare",
			err:  New(OpLoad, cause),
			want: []string{"load operation failed", "invalid length"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, fragment := range tt.want {
				if !strings.Contains(msg, fragment) {
					t.Errorf("Error() = %q, missing %q", msg, fragment)
				}
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewStorageError(OpSave, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var tagErr *TagError
	if !errors.As(wrapped, &tagErr) {
		t.Fatal("errors.As did not find TagError through the chain")
	}
	if tagErr.Op != OpSave {
		t.Errorf("Op = %q, want %q", tagErr.Op, OpSave)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"storage error", NewStorageError(OpSave, errors.New("io")), true},
		{"decode error", NewDecodeError(OpDecode, errors.New("bad input")), false},
		{"validation error", NewValidationError(OpSave, errors.New("empty")), false},
		{"plain error", errors.New("plain"), false},
		{"wrapped storage error", fmt.Errorf("outer: %w", NewStorageError(OpLoad, errors.New("io"))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(NewDecodeError(OpDecode, errors.New("x"))); got != ErrCodeDecodeFailure {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeDecodeFailure)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestWithMetadata(t *testing.T) {
	err := NewDecodeError(OpDecode, errors.New("x"))
	WithMetadata(err, "name", "report")

	var tagErr *TagError
	if !errors.As(err, &tagErr) {
		t.Fatal("lost TagError")
	}
	if tagErr.Metadata["name"] != "report" {
		t.Errorf("Metadata[name] = %v, want %q", tagErr.Metadata["name"], "report")
	}

	// No-op on plain errors.
	plain := errors.New("plain")
	if got := WithMetadata(plain, "k", "v"); got != plain {
		t.Error("WithMetadata changed a plain error")
	}
}
