package query

import "fmt"

const (
	// MaxSpecLength is the maximum length of a spec string.
	MaxSpecLength = 4096

	// MaxColumnNameLength is the maximum length for a column name.
	MaxColumnNameLength = 256
)

// validateSpecString rejects spec input that is empty or too long.
func validateSpecString(kind, s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalidSpec, kind)
	}
	if len(s) > MaxSpecLength {
		return fmt.Errorf("%w: %s too long: %d bytes (max %d)", ErrInvalidSpec, kind, len(s), MaxSpecLength)
	}
	return nil
}

// validateColumnName rejects empty or overly long column references.
func validateColumnName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s is missing a column name", ErrInvalidSpec, kind)
	}
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: column name too long: %d chars (max %d)", ErrInvalidSpec, len(name), MaxColumnNameLength)
	}
	return nil
}
