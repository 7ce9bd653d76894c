package iban

import "errors"

var (
	ErrInvalidLength      = errors.New("iban must be 28 characters")
	ErrInvalidCountry     = errors.New("iban must start with country code MA")
	ErrInvalidBBAN        = errors.New("bban must be 24 digits")
	ErrInvalidCheckDigits = errors.New("iban check digits do not match")
	ErrInvalidRIB         = errors.New("rib is not valid")
)
