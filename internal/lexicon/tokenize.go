// Package lexicon holds the mood lexicon and text normalization helpers.
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a normalized word with its byte span in the source text. Break is
// set when a clause ends after the token (. ! ? ;).
type Token struct {
	Text  string
	Start int
	End   int
	Break bool
}

// Tokenize splits text into lowercase word tokens. Letters and digits form
// words; an apostrophe is kept only between letters, so "don't" and "I’m"
// stay single tokens while quotes and other punctuation act as boundaries.
func Tokenize(text string) []Token {
	var tokens []Token
	var b strings.Builder
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tokens = append(tokens, Token{Text: b.String(), Start: start, End: end})
		b.Reset()
		start = -1
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if start < 0 {
				start = i
			}
			b.WriteRune(unicode.ToLower(r))
		case isApostrophe(r) && start >= 0 && letterAt(text, i+size):
			b.WriteByte('\'')
		default:
			flush(i)
			if isClauseBreak(r) && len(tokens) > 0 {
				tokens[len(tokens)-1].Break = true
			}
		}
		i += size
	}
	flush(len(text))
	return tokens
}

// Words returns only the token texts of Tokenize.
func Words(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// NormalizePhrase lowercases a phrase and collapses it to single-space separated tokens.
func NormalizePhrase(phrase string) string {
	return strings.Join(Words(phrase), " ")
}

func isClauseBreak(r rune) bool {
	switch r {
	case '.', '!', '?', ';', '…':
		return true
	}
	return false
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func letterAt(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r)
}
