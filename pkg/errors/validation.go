package errors

import (
	"strings"
	"unicode"
)

// ValidateResourceName validates a resource name handed to the file readers.
// Resource names are slash-separated paths relative to the root of the
// filesystem they are opened from.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateResourceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidArgument, "resource name cannot be empty")
	}

	const maxNameLength = 500
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidArgument, "resource name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidArgument, "resource name contains invalid characters")
		}
	}

	if strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidArgument, "resource name must be relative (cannot start with /)")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidArgument, "resource name cannot contain path traversal sequences (..)")
	}

	if strings.Contains(name, "\\") {
		return New(ErrCodeInvalidArgument, "resource name cannot contain backslashes")
	}

	return nil
}

// ValidateFlightNumber validates a flight number before it is registered.
// Flight numbers are free-form identifiers but must be printable, contain no
// whitespace and stay below 32 characters.
func ValidateFlightNumber(number string) error {
	if number == "" {
		return New(ErrCodeInvalidArgument, "flight number cannot be empty")
	}

	if len(number) > 32 {
		return New(ErrCodeInvalidArgument, "flight number too long (max 32 characters)")
	}

	for _, r := range number {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidArgument, "flight number contains invalid characters: %q", number)
		}
	}

	return nil
}
