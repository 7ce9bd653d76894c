// Package moroccokit is a library of validators, formatters and
// extractors for Moroccan identity and financial identifiers.
//
// It centralizes the country-specific format rules, checksum algorithms
// and display conventions so applications do not reimplement ad-hoc
// regexes:
//
//   - pkg/ice – 15-digit enterprise identifiers (MOD 97 control)
//   - pkg/rib – 24-digit bank account identifiers (chunked MOD 97 key)
//   - pkg/iban – Moroccan IBANs (ISO 13616 / MOD 97-10)
//   - pkg/cin – national identity card numbers with issuing-office lookup
//   - pkg/passport – passport numbers
//   - pkg/phone – phone normalization and operator classification
//
// Supporting packages: pkg/sanitizer (shared character-class cleanup),
// pkg/mod97 (the checksum engine) and pkg/cache (a bounded LRU used by
// the phone classifier).
//
// Every operation is a pure, synchronous, in-memory transformation of a
// single input value: no I/O, no persistence, no shared mutable state.
// All packages are safe for concurrent use.
package moroccokit
