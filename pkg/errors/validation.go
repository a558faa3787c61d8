package errors

import (
	"strings"
	"unicode"
)

// MaxHashLength is the longest meaningful identifier length: a 32-byte hash
// encodes to 64 hex characters.
const MaxHashLength = 64

// ValidateHashLength checks a node identifier length setting.
// Zero means "full length"; anything above [MaxHashLength] is accepted and
// behaves like full length, but negative values are rejected.
func ValidateHashLength(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "hash length cannot be negative: %d", n)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
