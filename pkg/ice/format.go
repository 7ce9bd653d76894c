package ice

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/moroccokit/pkg/sanitizer"
)

// Label is the scheme prefix recognized by Unformat and rendered by
// WithPrefix.
const Label = "ICE"

// groupWidths are the display group boundaries used by FormatWhileTyping:
// the 9-digit company in 3-digit groups, then establishment, then control.
var groupWidths = []int{3, 3, 3, EstablishmentLength, ControlLength}

// FormatOption configures Format, GenerateFormatted and the display
// grouping behavior.
type FormatOption func(*formatConfig)

type formatConfig struct {
	separator    rune
	prefix       bool
	groupCompany bool
}

func defaultFormatConfig() *formatConfig {
	return &formatConfig{separator: ' '}
}

// WithSeparator sets the character placed between segments. Digits are
// rejected at format time since they would corrupt the identifier.
// Default is a space.
func WithSeparator(sep rune) FormatOption {
	return func(c *formatConfig) {
		c.separator = sep
	}
}

// WithPrefix prepends the "ICE" label followed by the separator.
func WithPrefix() FormatOption {
	return func(c *formatConfig) {
		c.prefix = true
	}
}

// WithGroupedCompany splits the 9-digit company code into 3-digit groups
// joined by the separator.
func WithGroupedCompany() FormatOption {
	return func(c *formatConfig) {
		c.groupCompany = true
	}
}

// Format renders a validated ICE as company/establishment/control
// segments joined by the configured separator. It fails on invalid
// input rather than returning a misleading partially formatted string.
func Format(raw string, opts ...FormatOption) (string, error) {
	cfg := defaultFormatConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if unicode.IsDigit(cfg.separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeparator, cfg.separator)
	}

	res := Validate(raw)
	if !res.Valid {
		return "", fmt.Errorf("format ICE %q: %w", raw, res.Err)
	}

	sep := string(cfg.separator)
	c := res.Components

	company := c.Company
	if cfg.groupCompany {
		company = strings.Join([]string{c.Company[:3], c.Company[3:6], c.Company[6:]}, sep)
	}

	out := strings.Join([]string{company, c.Establishment, c.Control}, sep)
	if cfg.prefix {
		out = Label + sep + out
	}
	return out, nil
}

// Unformat recovers the digit payload from a formatted string. It strips
// a leading case-insensitive "ICE" label and every non-digit character.
// It is lossy and best-effort: no validation is performed, so it works
// on partial as-you-type input and never fails.
func Unformat(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= len(Label) && strings.EqualFold(trimmed[:len(Label)], Label) {
		trimmed = trimmed[len(Label):]
	}
	return sanitizer.Digits(trimmed)
}

// Mask hides all but the last four digits for display in logs and UIs.
// Lossy and best-effort: it never fails, even on input that does not
// validate.
func Mask(raw string) string {
	digits := Unformat(raw)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// FormatWhileTyping re-groups whatever digits have been typed so far,
// truncated to maxDigits (capped at the 15-digit scheme width; values
// below 1 mean the full width). Group boundaries are fixed at
// 3-3-3-4-2, so appending a digit either extends the last group or
// opens a new one and never moves an already placed separator.
func FormatWhileTyping(partial string, maxDigits int) string {
	if maxDigits < 1 || maxDigits > TotalLength {
		maxDigits = TotalLength
	}

	digits := Unformat(partial)
	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}

	var groups []string
	for _, w := range groupWidths {
		if len(digits) == 0 {
			break
		}
		if w > len(digits) {
			w = len(digits)
		}
		groups = append(groups, digits[:w])
		digits = digits[w:]
	}
	return strings.Join(groups, " ")
}
