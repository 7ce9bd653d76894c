package rib

import "errors"

var (
	ErrInvalidLength        = errors.New("rib must be 24 digits")
	ErrNonNumeric           = errors.New("rib contains non-numeric characters")
	ErrUnknownBank          = errors.New("bank code does not match any known issuer")
	ErrInactiveBank         = errors.New("bank code belongs to an inactive issuer")
	ErrInvalidAccountFormat = errors.New("rib does not match the issuer's account format")
	ErrInvalidKey           = errors.New("rib key does not match the payload")
	ErrInvalidPayloadLength = errors.New("payload must be 22 digits")
)
