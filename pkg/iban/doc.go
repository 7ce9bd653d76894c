// Package iban validates Moroccan IBANs (ISO 13616) and converts
// between IBAN and RIB representations.
//
// A Moroccan IBAN is 28 characters: the country code "MA", two check
// digits and a 24-digit BBAN, which is exactly the domestic RIB.
// Verification is the standard MOD 97-10 check: move the first four
// characters to the end, substitute letters with their numeric values
// (A=10 … Z=35) and reduce the resulting digit string modulo 97; the
// IBAN is valid iff the remainder is 1.
//
//	iban.IsValid("MA64 0071 0800 0779 2000 3031 2071") // true
//
// FromRIB composes a full IBAN from a validated domestic account
// number, and RIB extracts it back.
package iban
