package ice

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/moroccokit/pkg/mod97"
	"github.com/dmitrymomot/moroccokit/pkg/sanitizer"
)

// Field widths of a Moroccan ICE.
const (
	CompanyLength       = 9
	EstablishmentLength = 4
	ControlLength       = 2
	TotalLength         = CompanyLength + EstablishmentLength + ControlLength

	payloadLength = TotalLength - ControlLength
)

// Components is the fixed-width decomposition of a valid ICE.
// Join reproduces the sanitized identifier exactly.
type Components struct {
	Company       string
	Establishment string
	Control       string
}

// Join concatenates the components back into the 15-digit identifier.
func (c Components) Join() string {
	return c.Company + c.Establishment + c.Control
}

// FieldError is a typed validation failure. Details carries enough
// context (received lengths, computed vs provided control) to diagnose
// the failure without re-running validation.
type FieldError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Result is the outcome of validating one input value.
// Valid is true iff Components is set and Err is nil. Sanitized is
// populated even on failure to aid debugging of partial input.
type Result struct {
	Valid      bool
	Sanitized  string
	Components *Components
	Err        *FieldError
}

// Validate checks any input value against the ICE scheme. It never
// panics: unexpected input degrades to a Result with a typed error.
func Validate(input any) (res Result) {
	// Unforeseen faults must degrade to an invalid Result, never escape
	// to the caller.
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Sanitized: res.Sanitized,
				Err: &FieldError{
					Code:    CodeValidationFailure,
					Message: "internal validation failure",
					Details: map[string]any{"cause": fmt.Sprint(r)},
				},
			}
		}
	}()

	raw, ok := input.(string)
	if !ok {
		return Result{
			Err: &FieldError{
				Code:    CodeInvalidInputType,
				Message: "input must be a string",
				Details: map[string]any{"type": fmt.Sprintf("%T", input)},
			},
		}
	}

	sanitized := sanitizer.Digits(raw)

	if len(sanitized) != TotalLength {
		// Separator-stripped input of the right width means the length
		// was fine but the alphabet was not.
		if stripped := sanitizer.StripSeparators(raw); len(stripped) == TotalLength {
			return Result{
				Sanitized: sanitized,
				Err: &FieldError{
					Code:    CodeNonNumeric,
					Message: "identifier contains non-numeric characters",
					Details: map[string]any{"received": stripped},
				},
			}
		}
		return Result{
			Sanitized: sanitized,
			Err: &FieldError{
				Code:    CodeInvalidLength,
				Message: fmt.Sprintf("expected %d digits, got %d", TotalLength, len(sanitized)),
				Details: map[string]any{
					"expected":  TotalLength,
					"received":  len(sanitized),
					"sanitized": sanitized,
				},
			},
		}
	}

	components := Components{
		Company:       sanitized[:CompanyLength],
		Establishment: sanitized[CompanyLength : CompanyLength+EstablishmentLength],
		Control:       sanitized[payloadLength:],
	}

	computed := mod97.Checksum(sanitized[:payloadLength])
	if computed != components.Control {
		return Result{
			Sanitized: sanitized,
			Err: &FieldError{
				Code:    CodeInvalidControl,
				Message: "control digits do not match the payload",
				Details: map[string]any{
					"computed": computed,
					"provided": components.Control,
				},
			},
		}
	}

	return Result{
		Valid:      true,
		Sanitized:  sanitized,
		Components: &components,
	}
}

// IsValid reports whether the input is a valid ICE.
func IsValid(input any) bool {
	return Validate(input).Valid
}

// CalculateControl computes the 2-digit MOD 97 control for a payload.
// It accepts either a bare 13-digit company+establishment payload or a
// full 15-digit identifier, in which case the trailing control digits
// are stripped before computing; both forms of the same logical value
// yield the same control.
func CalculateControl(payload string) (string, error) {
	digits := sanitizer.Digits(payload)

	switch len(digits) {
	case payloadLength:
	case TotalLength:
		digits = digits[:payloadLength]
	default:
		return "", fmt.Errorf("%w: got %d digits", ErrInvalidPayloadLength, len(digits))
	}

	return mod97.Checksum(digits), nil
}

// Extract validates the input and returns its components. The upstream
// validation error is wrapped unchanged, so callers can unwrap the
// *FieldError to tell malformed input apart from extraction bugs.
func Extract(raw string) (Components, error) {
	res := Validate(raw)
	if !res.Valid {
		return Components{}, fmt.Errorf("extract ICE: %w", res.Err)
	}
	if res.Components == nil {
		return Components{}, ErrMissingComponents
	}

	// Final safety net against a validator marking inconsistent state
	// as valid.
	c := *res.Components
	if len(c.Company) != CompanyLength ||
		len(c.Establishment) != EstablishmentLength ||
		len(c.Control) != ControlLength ||
		!strings.HasPrefix(res.Sanitized, c.Company) {
		return Components{}, ErrMalformedComponents
	}

	return c, nil
}
