// Package tokenizer provides text tokenisation for the search engine. It
// lower-cases input and splits on anything that is not a letter, digit, or
// underscore. There is deliberately no stemming and no stop-word removal:
// every word in a document is indexed as written.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenize breaks text into lowercase tokens. A token is a maximal run of
// letters, digits, and underscores.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// Frequencies returns the per-token occurrence count for text.
func Frequencies(text string) map[string]int {
	tokens := Tokenize(text)
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}
