// Package sanitizer provides the character-class cleanup shared by every
// identifier scheme in moroccokit.
//
// Raw identifier input arrives with separators (spaces, hyphens, slashes,
// dots, underscores), stray punctuation and occasionally full-width digits
// pasted from PDF statements or spreadsheets. The helpers here reduce such
// input to the exact alphabet a scheme accepts, deleting everything else:
//
//   - Digits – keeps 0-9 only (ICE, RIB payloads, phone numbers)
//   - Alphanumeric – uppercases and keeps A-Z0-9 (IBAN, CIN)
//   - Letters – uppercases and keeps A-Z (CIN and passport prefixes)
//
// Full-width digits (U+FF10–U+FF19) are folded to their ASCII equivalents
// before filtering, so "１２３-456" sanitizes to "123456".
//
// All helpers are stateless, idempotent and O(n); unexpected characters are
// treated as noise to delete, never as errors. Safe for concurrent use.
package sanitizer
