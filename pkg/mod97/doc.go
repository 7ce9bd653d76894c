// Package mod97 implements the MOD 97 checksum arithmetic shared by the
// ICE, RIB and IBAN validators.
//
// All three schemes reduce a long decimal string modulo 97; the payloads
// routinely exceed 64-bit integer range, so every reduction here is
// performed incrementally one digit at a time:
//
//	rem = (rem*10 + digit) mod 97
//
// which is mathematically equal to interpreting the whole string as one
// arbitrary-precision integer and keeps intermediate values below 10^3.
//
//   - Fold – plain left-to-right digit fold (ICE control, IBAN verify)
//   - FoldChunks – fixed-width chunk fold (RIB key); equal to Fold for
//     any chunk width, kept as the documented form of the RIB algorithm
//   - ExpandLetters / Rearrange – the IBAN letter substitution (A=10 …
//     Z=35) and the move of the first four characters to the end
//
// The engine itself never returns errors: callers are expected to have
// sanitized and length-checked their input first, and behavior on
// non-digit input is undefined.
package mod97
