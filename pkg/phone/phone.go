package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/moroccokit/pkg/sanitizer"
)

var ErrInvalidNumber = errors.New("not a valid Moroccan phone number")

// CountryCode is the E.164 country calling code for Morocco.
const CountryCode = "212"

// nsnLength is the national significant number width (digits after the
// country code or the leading zero).
const nsnLength = 9

// LineType distinguishes mobile from fixed lines.
type LineType string

const (
	TypeMobile   LineType = "mobile"
	TypeLandline LineType = "landline"
)

// Info is the derived classification of one number.
type Info struct {
	E164     string // +212612345678
	Local    string // 0612345678
	Type     LineType
	Operator string // carrier for mobile prefixes in the table, else ""
	Region   string // landline area for known prefixes, else ""
}

// operators maps 3-digit mobile prefixes (first digits of the NSN) to
// carriers. Coverage is the common prefix blocks, not the full ANRT
// numbering plan.
var operators = map[string]string{
	"661": "Maroc Telecom",
	"666": "Maroc Telecom",
	"667": "Maroc Telecom",
	"670": "Maroc Telecom",
	"673": "Maroc Telecom",
	"612": "Orange",
	"614": "Orange",
	"618": "Orange",
	"649": "Orange",
	"656": "Orange",
	"633": "inwi",
	"634": "inwi",
	"640": "inwi",
	"697": "inwi",
	"700": "inwi",
}

// landlineAreas maps 3-digit landline prefixes to their area.
var landlineAreas = map[string]string{
	"520": "Casablanca",
	"522": "Casablanca",
	"523": "El Jadida - Settat",
	"524": "Marrakech",
	"528": "Agadir",
	"535": "Fès - Meknès",
	"536": "Oujda",
	"537": "Rabat",
	"539": "Tanger",
}

// Normalize reduces any accepted input form to canonical E.164.
func Normalize(raw string) (string, error) {
	nsn, err := nationalNumber(raw)
	if err != nil {
		return "", err
	}
	return "+" + CountryCode + nsn, nil
}

// IsValid reports whether the input is a well-formed Moroccan number.
func IsValid(raw string) bool {
	_, err := nationalNumber(raw)
	return err == nil
}

// Classify normalizes the number and derives its line type, carrier and
// area from the prefix tables.
func Classify(raw string) (Info, error) {
	nsn, err := nationalNumber(raw)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		E164:  "+" + CountryCode + nsn,
		Local: "0" + nsn,
	}
	switch nsn[0] {
	case '5':
		info.Type = TypeLandline
		info.Region = landlineAreas[nsn[:3]]
	default:
		info.Type = TypeMobile
		info.Operator = operators[nsn[:3]]
	}
	return info, nil
}

// FormatLocal renders the number in the domestic "0X XX XX XX XX" form.
func FormatLocal(raw string) (string, error) {
	nsn, err := nationalNumber(raw)
	if err != nil {
		return "", err
	}

	local := "0" + nsn
	return strings.Join([]string{local[:2], local[2:4], local[4:6], local[6:8], local[8:]}, " "), nil
}

// FormatInternational renders the number as "+212 X XX XX XX XX".
func FormatInternational(raw string) (string, error) {
	nsn, err := nationalNumber(raw)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		"+" + CountryCode, nsn[:1], nsn[1:3], nsn[3:5], nsn[5:7], nsn[7:],
	}, " "), nil
}

// Mask hides all but the last four digits. Lossy and best-effort: it
// never fails, even on numbers that do not validate.
func Mask(raw string) string {
	digits := sanitizer.Digits(raw)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// nationalNumber extracts the 9-digit national significant number from
// any accepted input form.
func nationalNumber(raw string) (string, error) {
	digits := sanitizer.Digits(raw)

	switch {
	case len(digits) == nsnLength+1 && digits[0] == '0':
		digits = digits[1:]
	case len(digits) == nsnLength+len(CountryCode) && strings.HasPrefix(digits, CountryCode):
		digits = digits[len(CountryCode):]
	case len(digits) == nsnLength+len(CountryCode)+2 && strings.HasPrefix(digits, "00"+CountryCode):
		digits = digits[len(CountryCode)+2:]
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	switch digits[0] {
	case '5', '6', '7':
		return digits, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
}
