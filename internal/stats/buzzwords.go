package stats

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
)

// DefaultTopWords is the number of buzzwords returned when topN is not positive.
const DefaultTopWords = 10

// StopwordChecker reports whether a word is excluded from theme extraction.
type StopwordChecker interface {
	IsStopword(word string) bool
}

// ExtractBuzzWords counts recurring vocabulary across all texts and returns the
// topN words by count. Equal counts keep the order in which words were first seen.
func ExtractBuzzWords(texts []string, topN int, stop StopwordChecker) []model.BuzzWord {
	if topN <= 0 {
		topN = DefaultTopWords
	}
	type item struct {
		word  string
		count int
		first int
	}
	index := map[string]int{}
	items := []item{}
	for _, text := range texts {
		for _, word := range lexicon.Words(text) {
			word = strings.TrimSuffix(word, "'s")
			if !isThemeWord(word, stop) {
				continue
			}
			if i, ok := index[word]; ok {
				items[i].count++
				continue
			}
			index[word] = len(items)
			items = append(items, item{word: word, count: 1, first: len(items)})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count == items[j].count {
			return items[i].first < items[j].first
		}
		return items[i].count > items[j].count
	})
	if topN > len(items) {
		topN = len(items)
	}
	out := make([]model.BuzzWord, 0, topN)
	for _, it := range items[:topN] {
		out = append(out, model.BuzzWord{Word: it.word, Count: it.count})
	}
	return out
}

func isThemeWord(word string, stop StopwordChecker) bool {
	if utf8.RuneCountInString(word) < lexicon.MinWordLength {
		return false
	}
	if stop != nil && stop.IsStopword(word) {
		return false
	}
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
