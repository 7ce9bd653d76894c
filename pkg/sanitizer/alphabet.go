package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Digits removes every character outside 0-9. Full-width digits are folded
// to ASCII first so numbers pasted from East Asian locales or PDF exports
// survive sanitization.
func Digits(s string) string {
	s = foldWidth(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Alphanumeric uppercases the input and removes every character outside
// A-Z0-9. Used by schemes with a mixed alphabet such as IBAN and CIN.
func Alphanumeric(s string) string {
	s = foldWidth(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToUpper(r)
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Letters uppercases the input and removes every character outside A-Z.
func Letters(s string) string {
	s = foldWidth(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripSeparators removes the separator characters people type or paste
// inside identifiers (spaces, hyphens, slashes, dots, underscores) while
// keeping everything else. Validators use it to tell "right width, wrong
// alphabet" apart from "wrong width".
func StripSeparators(s string) string {
	s = foldWidth(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '-', '/', '.', '_':
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldWidth maps full-width and half-width variants to their canonical
// narrow forms. Plain ASCII passes through untouched.
func foldWidth(s string) string {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return width.Fold.String(s)
		}
	}
	return s
}
