// Package passport validates Moroccan passport numbers: two uppercase
// letters followed by six digits, e.g. "XA123456". Input is sanitized
// the same way as the other schemes, so separators and lowercase are
// tolerated.
package passport

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/moroccokit/pkg/sanitizer"
)

var ErrInvalidFormat = errors.New("passport must be 2 letters followed by 6 digits")

var pattern = regexp.MustCompile(`^[A-Z]{2}\d{6}$`)

// IsValid reports whether the input matches the passport shape.
func IsValid(raw string) bool {
	return pattern.MatchString(sanitizer.Alphanumeric(raw))
}

// Normalize sanitizes the input and returns its canonical uppercase
// form, or an error when the shape does not match.
func Normalize(raw string) (string, error) {
	sanitized := sanitizer.Alphanumeric(raw)
	if !pattern.MatchString(sanitized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, sanitized)
	}
	return sanitized, nil
}
