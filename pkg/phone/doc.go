// Package phone normalizes, validates and classifies Moroccan phone
// numbers.
//
// Accepted input forms are the local "0XXXXXXXXX", the bare country
// form "212XXXXXXXXX" and the international "+212…" / "00212…"
// variants, with any separators. The canonical form is E.164:
//
//	e164, err := phone.Normalize("06 12 34 56 78") // "+212612345678"
//
// Classify derives the line type (mobile for 6/7 prefixes, landline for
// 5) and, where the prefix is in the operator table, the carrier or the
// landline area:
//
//	info, _ := phone.Classify("0522123456")
//	// info.Type == phone.TypeLandline, info.Region == "Casablanca"
//
// The stateless functions are the primary API. Classifier wraps
// Classify with a bounded LRU memoization layer for callers that
// classify the same numbers repeatedly; capacity, TTL and clock are
// injected, so it carries no hidden global state.
package phone
