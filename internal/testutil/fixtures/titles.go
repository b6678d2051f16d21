// Package fixtures provides reusable test data generators.
// Generated strings have an exact length in Unicode characters so boundary
// tests do not depend on byte counts.
package fixtures

import "strings"

var (
	englishWords  = []string{"systems", "notes", "on", "the", "craft", "of", "writing", "code"}
	japaneseWords = []string{"記事", "雑誌", "著者", "技術", "入門"}
)

// Title returns a title of exactly length characters built from words in the
// given language ("english" or "japanese"; anything else means english).
//
// Example:
//
//	Title(5, "english")  // "syste"
//	Title(4, "japanese") // "記事雑誌"
func Title(length int, language string) string {
	if length <= 0 {
		return ""
	}

	words, sep := englishWords, " "
	if language == "japanese" {
		words, sep = japaneseWords, ""
	}

	var b strings.Builder
	for i := 0; len([]rune(b.String())) < length; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(words[i%len(words)])
	}
	return string([]rune(b.String())[:length])
}
