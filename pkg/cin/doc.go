// Package cin validates Moroccan national identity card numbers
// (Carte d'Identité Nationale).
//
// A CIN is one or two uppercase letters followed by five or six digits,
// e.g. "A123456" or "BK123456". The letter prefix encodes the issuing
// office; LookupRegion resolves it against a table of common prefixes.
//
//	ok := cin.IsValid("bk 123456") // true, input is sanitized first
//
//	c, err := cin.Parse("BK123456")
//	// c.Prefix == "BK", c.Sequence == "123456"
//
// The pipeline mirrors the financial schemes — sanitize, then shape
// check, then table lookup — but the scheme carries no checksum.
package cin
