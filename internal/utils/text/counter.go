// Package text provides small helpers for measuring user supplied text.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters such as Japanese text or emoji count as one character each.
//
// Examples:
//
//	CountRunes("hello")     // returns 5
//	CountRunes("こんにちは") // returns 5
//	CountRunes("")          // returns 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// WithinLength reports whether s has between lo and hi characters, inclusive.
func WithinLength(s string, lo, hi int) bool {
	n := CountRunes(s)
	return n >= lo && n <= hi
}
