// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Filter keeps the words accepted by keep.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsWord accepts a run of letters or digits with optional inner apostrophes,
// the same shape the tokenizer produces.
func IsWord(word string) bool {
	if word == "" {
		return false
	}
	runes := []rune(word)
	for i, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if (r == '\'' || r == '’') && i > 0 && i < len(runes)-1 {
			continue
		}
		return false
	}
	return true
}

// Dedupe drops repeated words, keeping the first occurrence.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
