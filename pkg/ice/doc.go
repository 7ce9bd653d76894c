// Package ice validates, formats and generates Moroccan ICE identifiers
// (Identifiant Commun de l'Entreprise).
//
// An ICE is 15 digits: a 9-digit company code, a 4-digit establishment
// code and a 2-digit MOD 97 control. Validation never panics and never
// returns a Go error; it produces a structured Result with a typed
// error code so callers can distinguish wrong type, wrong length, wrong
// alphabet and wrong control:
//
//	res := ice.Validate("123 456 789 0000 60")
//	if res.Valid {
//	    fmt.Println(res.Components.Company) // "123456789"
//	}
//
// Formatting and extraction, by contrast, return errors when handed an
// invalid identifier — rendering unverified data is a programmer error,
// not an input-validation case:
//
//	out, err := ice.Format("123456789000161",
//	    ice.WithSeparator('-'), ice.WithPrefix())
//	// out == "ICE-123456789-0001-61"
//
// Unformat is the lossy inverse: it strips a leading "ICE" label and all
// non-digit characters without validating, which makes it usable on
// partial input. FormatWhileTyping builds on it to re-group digits after
// every keystroke with stable separator positions.
package ice
