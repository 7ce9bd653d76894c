package ice

import "errors"

var (
	ErrInvalidSeparator     = errors.New("separator must be a single non-digit character")
	ErrInvalidPayloadLength = errors.New("payload must be 13 or 15 digits")
	ErrMissingComponents    = errors.New("validation result is missing components")
	ErrMalformedComponents  = errors.New("component widths are inconsistent")
)

// Error codes carried by Result.Err, one per validation stage.
const (
	CodeInvalidInputType  = "INVALID_INPUT_TYPE"
	CodeInvalidLength     = "INVALID_LENGTH"
	CodeNonNumeric        = "NON_NUMERIC_CHARACTERS"
	CodeInvalidControl    = "INVALID_CONTROL"
	CodeValidationFailure = "VALIDATION_FAILURE"
)
