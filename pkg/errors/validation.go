package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxTextLength is the largest message accepted by ValidateText when
// no explicit limit is configured.
const DefaultMaxTextLength = 64 * 1024

// ValidateText checks a message before it enters the pipeline.
//
// The rules are:
//   - The text must not be empty
//   - The text must be valid UTF-8
//   - No null bytes
//   - Length (in bytes) must not exceed max; max <= 0 uses DefaultMaxTextLength
//
// Newlines and tabs are allowed; they pass through every substitution
// cipher unchanged.
func ValidateText(text string, max int) error {
	if text == "" {
		return New(ErrCodeEmptyInput, "input text cannot be empty")
	}
	if max <= 0 {
		max = DefaultMaxTextLength
	}
	if len(text) > max {
		return New(ErrCodeInvalidInput, "input text too long (max %d bytes)", max)
	}
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "input text is not valid UTF-8")
	}
	if strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidInput, "input text contains null bytes")
	}
	return nil
}

// ValidateStackPath validates the path of a stack file given on the command line.
func ValidateStackPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "stack path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "stack path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "stack path contains invalid characters")
		}
	}
	return nil
}
