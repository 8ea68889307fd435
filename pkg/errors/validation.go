package errors

import (
	"strings"
	"unicode"
)

// ValidateItemID validates an item identity for safety and correctness.
// Item ids are stable keys a host reuses across re-layouts, so they must be
// printable, non-empty, and of sane length.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidItem, "item id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains invalid control characters")
		}
	}

	if strings.Contains(id, "\x00") {
		return New(ErrCodeInvalidItem, "item id contains null bytes")
	}

	return nil
}

// ValidateConfigFilename validates a config filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateConfigFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidConfig, "config filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidConfig, "config filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidConfig, "config filename cannot be a hidden file")
	}

	return nil
}
