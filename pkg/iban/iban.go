package iban

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/moroccokit/pkg/mod97"
	"github.com/dmitrymomot/moroccokit/pkg/rib"
	"github.com/dmitrymomot/moroccokit/pkg/sanitizer"
)

// Layout of a Moroccan IBAN.
const (
	CountryCode      = "MA"
	CheckDigitLength = 2
	BBANLength       = 24
	TotalLength      = len(CountryCode) + CheckDigitLength + BBANLength
)

// IsValid reports whether the input is a valid Moroccan IBAN.
// It never panics; any internal fault degrades to false.
func IsValid(raw string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return validate(raw) == nil
}

// Validate runs the same pipeline as IsValid but returns the typed
// error of the failing stage.
func Validate(raw string) error {
	return validate(raw)
}

func validate(raw string) error {
	sanitized := sanitizer.Alphanumeric(raw)

	if len(sanitized) != TotalLength {
		return fmt.Errorf("%w: got %d characters (%q)", ErrInvalidLength, len(sanitized), sanitized)
	}
	if !strings.HasPrefix(sanitized, CountryCode) {
		return fmt.Errorf("%w: got %q", ErrInvalidCountry, sanitized[:len(CountryCode)])
	}
	if !digitsOnly(sanitized[len(CountryCode):]) {
		return fmt.Errorf("%w: %q", ErrInvalidBBAN, sanitized[len(CountryCode)+CheckDigitLength:])
	}

	if mod97.Fold(mod97.ExpandLetters(mod97.Rearrange(sanitized))) != 1 {
		return ErrInvalidCheckDigits
	}
	return nil
}

// CalculateCheckDigits computes the two check digits for a 24-digit
// BBAN, per ISO 7064: fold the BBAN followed by "MA00" and subtract
// the remainder from 98.
func CalculateCheckDigits(bban string) (string, error) {
	digits := sanitizer.Digits(bban)
	if len(digits) != BBANLength {
		return "", fmt.Errorf("%w: got %d digits", ErrInvalidBBAN, len(digits))
	}

	rem := mod97.Fold(mod97.ExpandLetters(digits + CountryCode + "00"))
	return fmt.Sprintf("%02d", 98-rem), nil
}

// FromRIB composes the IBAN embedding a valid domestic RIB.
func FromRIB(raw string) (string, error) {
	d, err := rib.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRIB, err)
	}

	check, err := CalculateCheckDigits(d.Sanitized)
	if err != nil {
		return "", err
	}
	return CountryCode + check + d.Sanitized, nil
}

// RIB extracts the domestic account number embedded in a valid IBAN.
func RIB(raw string) (string, error) {
	if err := validate(raw); err != nil {
		return "", err
	}
	sanitized := sanitizer.Alphanumeric(raw)
	return sanitized[len(CountryCode)+CheckDigitLength:], nil
}

// Format renders a valid IBAN in the conventional 4-character groups.
func Format(raw string) (string, error) {
	if err := validate(raw); err != nil {
		return "", err
	}
	sanitized := sanitizer.Alphanumeric(raw)

	var groups []string
	for i := 0; i < len(sanitized); i += 4 {
		end := i + 4
		if end > len(sanitized) {
			end = len(sanitized)
		}
		groups = append(groups, sanitized[i:end])
	}
	return strings.Join(groups, " "), nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
