package rib

import (
	"fmt"

	"github.com/dmitrymomot/moroccokit/pkg/mod97"
	"github.com/dmitrymomot/moroccokit/pkg/sanitizer"
)

// Field widths of a Moroccan RIB.
const (
	BankCodeLength   = 3
	BranchCodeLength = 3
	AccountLength    = 16
	KeyLength        = 2
	TotalLength      = BankCodeLength + BranchCodeLength + AccountLength + KeyLength

	payloadLength = TotalLength - KeyLength
	chunkWidth    = 7
)

// Components is the fixed-width decomposition of a RIB.
type Components struct {
	BankCode      string
	BranchCode    string
	AccountNumber string
	Key           string
}

// Join concatenates the components back into the 24-digit identifier.
func (c Components) Join() string {
	return c.BankCode + c.BranchCode + c.AccountNumber + c.Key
}

// Details is the diagnostic view of a valid RIB: the component
// breakdown, the issuing bank and, when the branch code is registered,
// the branch.
type Details struct {
	Sanitized  string
	Components Components
	Bank       Bank
	Branch     *Branch
}

// IsValid reports whether the input is a valid RIB. It never panics;
// any internal fault degrades to false.
func IsValid(raw string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	_, err := Parse(raw)
	return err == nil
}

// Parse validates the input and returns the component breakdown plus
// the issuer metadata. Each validation stage fails with its own typed
// error.
func Parse(raw string) (Details, error) {
	sanitized := sanitizer.Digits(raw)

	if len(sanitized) != TotalLength {
		if stripped := sanitizer.StripSeparators(raw); len(stripped) == TotalLength {
			return Details{}, fmt.Errorf("%w: %q", ErrNonNumeric, stripped)
		}
		return Details{}, fmt.Errorf("%w: got %d digits (%q)", ErrInvalidLength, len(sanitized), sanitized)
	}

	components := Components{
		BankCode:      sanitized[:BankCodeLength],
		BranchCode:    sanitized[BankCodeLength : BankCodeLength+BranchCodeLength],
		AccountNumber: sanitized[BankCodeLength+BranchCodeLength : payloadLength],
		Key:           sanitized[payloadLength:],
	}

	bank, found := LookupBank(components.BankCode)
	if !found {
		return Details{}, fmt.Errorf("%w: %s", ErrUnknownBank, components.BankCode)
	}
	if !bank.Active {
		return Details{}, fmt.Errorf("%w: %s", ErrInactiveBank, components.BankCode)
	}
	if bank.RIBPattern != nil && !bank.RIBPattern.MatchString(sanitized) {
		return Details{}, fmt.Errorf("%w: bank %s", ErrInvalidAccountFormat, components.BankCode)
	}

	computed, err := CalculateKey(sanitized[:payloadLength])
	if err != nil {
		return Details{}, err
	}
	if computed != components.Key {
		return Details{}, fmt.Errorf("%w: computed %s, provided %s", ErrInvalidKey, computed, components.Key)
	}

	return Details{
		Sanitized:  sanitized,
		Components: components,
		Bank:       bank,
		Branch:     findBranch(bank, components.BranchCode),
	}, nil
}

// CalculateKey computes the 2-digit control key for a 22-digit
// bank+branch+account payload. The payload is shifted two places left
// (key position zeroed) and folded in 7-digit chunks; the key is the
// MOD 97 complement of the remainder. The full fold of payload+key
// reduces to 0 modulo 97.
func CalculateKey(payload string) (string, error) {
	digits := sanitizer.Digits(payload)
	if len(digits) != payloadLength {
		return "", fmt.Errorf("%w: got %d digits", ErrInvalidPayloadLength, len(digits))
	}

	rem := mod97.FoldChunks(digits+"00", chunkWidth)
	return fmt.Sprintf("%02d", (mod97.Modulus-rem)%mod97.Modulus), nil
}

func findBranch(bank Bank, code string) *Branch {
	for i := range bank.Branches {
		if bank.Branches[i].Code == code {
			return &bank.Branches[i]
		}
	}
	return nil
}
