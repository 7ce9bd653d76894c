// Package rib validates Moroccan bank account identifiers (Relevé
// d'Identité Bancaire).
//
// A RIB is 24 digits: a 3-digit bank code, a 3-digit branch code, a
// 16-digit account number and a 2-digit control key. The key is the MOD 97
// complement of the payload shifted two places left, computed with the
// 7-digit chunked fold used in banking references; a valid RIB's full
// 24-digit fold reduces to 0 modulo 97.
//
// The primary contract is boolean — IsValid never returns an error and
// never panics:
//
//	ok := rib.IsValid("007 108 0007792000303120 71")
//
// Parse is the parallel diagnostic accessor: it re-derives the
// component breakdown and the issuing bank's metadata, returning a typed
// error naming the exact failing stage:
//
//	d, err := rib.Parse("007108000779200030312071")
//	// d.Bank.Name == "Attijariwafa Bank", d.Components.Key == "71"
//
// The bank registry is an immutable in-process table keyed by bank code;
// LookupBank exposes it read-only.
package rib
