package mod97

import (
	"fmt"
	"strings"
)

// Modulus is the divisor used by every checksum in the MOD 97 family.
const Modulus = 97

// Fold reduces a decimal string modulo 97, one digit at a time.
// Non-digit characters must have been removed by the caller.
func Fold(digits string) int {
	rem := 0
	for i := 0; i < len(digits); i++ {
		rem = (rem*10 + int(digits[i]-'0')) % Modulus
	}
	return rem
}

// FoldChunks reduces a decimal string modulo 97 by folding fixed-width
// chunks left to right; the last chunk may be shorter. The result equals
// Fold for any width, but mirrors how the RIB algorithm is written down
// in banking references.
func FoldChunks(digits string, chunkWidth int) int {
	if chunkWidth <= 0 {
		return Fold(digits)
	}

	rem := 0
	for i := 0; i < len(digits); i += chunkWidth {
		end := i + chunkWidth
		if end > len(digits) {
			end = len(digits)
		}
		chunk := digits[i:end]

		shift := 1
		for range chunk {
			shift = shift * 10 % Modulus
		}
		rem = (rem*shift + Fold(chunk)) % Modulus
	}
	return rem
}

// Checksum returns the remainder of the digit string modulo 97 as a
// zero-padded two-digit decimal string.
func Checksum(digits string) string {
	return fmt.Sprintf("%02d", Fold(digits))
}

// ExpandLetters substitutes every uppercase letter with its IBAN numeric
// value (A=10 … Z=35) as two decimal digits, leaving digits untouched.
func ExpandLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteString(fmt.Sprintf("%d", c-'A'+10))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Rearrange moves the first four characters of an IBAN (country code and
// check digits) to the end, the canonical ISO 13616 pre-processing step.
func Rearrange(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[4:] + s[:4]
}
