package lexicon

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/verte-zerg/moodlog/internal/model"
)

// MinWordLength is the shortest token that is not treated as a stopword.
const MinWordLength = 3

// Lexicon maps mood categories to weighted trigger phrases and holds the
// stopword set used by theme extraction. A Lexicon is immutable once built.
type Lexicon struct {
	byMood    [model.MoodCount][]model.LexiconEntry
	stopwords map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the built-in lexicon.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := New(defaultEntries(), defaultStopwords)
		if err != nil {
			panic(fmt.Sprintf("built-in lexicon is invalid: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// New validates entries and stopwords and builds a Lexicon. Every map key must
// be a known mood; phrases must be non-empty and unique within their mood and
// weights must be positive.
func New(entries map[model.Mood][]model.LexiconEntry, stopwords []string) (*Lexicon, error) {
	lex := &Lexicon{stopwords: make(map[string]struct{}, len(stopwords))}
	for mood, list := range entries {
		idx := mood.Index()
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown mood %q in lexicon", model.ErrInvalidArgument, mood)
		}
		seen := make(map[string]struct{}, len(list))
		normalized := make([]model.LexiconEntry, 0, len(list))
		for _, e := range list {
			if e.Mood != "" && e.Mood != mood {
				return nil, fmt.Errorf("%w: entry %q declares mood %q under %q", model.ErrInvalidArgument, e.Phrase, e.Mood, mood)
			}
			phrase := NormalizePhrase(e.Phrase)
			if phrase == "" {
				return nil, fmt.Errorf("%w: empty phrase for mood %q", model.ErrInvalidArgument, mood)
			}
			if e.Weight <= 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return nil, fmt.Errorf("%w: phrase %q for mood %q has weight %v", model.ErrInvalidArgument, phrase, mood, e.Weight)
			}
			if _, dup := seen[phrase]; dup {
				return nil, fmt.Errorf("%w: duplicate phrase %q for mood %q", model.ErrInvalidArgument, phrase, mood)
			}
			seen[phrase] = struct{}{}
			normalized = append(normalized, model.LexiconEntry{Mood: mood, Phrase: phrase, Weight: e.Weight})
		}
		sort.SliceStable(normalized, func(i, j int) bool {
			if normalized[i].Weight == normalized[j].Weight {
				return strings.Count(normalized[i].Phrase, " ") > strings.Count(normalized[j].Phrase, " ")
			}
			return normalized[i].Weight > normalized[j].Weight
		})
		lex.byMood[idx] = normalized
	}
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		lex.stopwords[w] = struct{}{}
	}
	return lex, nil
}

// EntriesFor returns the trigger phrases of a mood, highest weight first.
func (l *Lexicon) EntriesFor(mood model.Mood) []model.LexiconEntry {
	idx := mood.Index()
	if idx < 0 {
		return nil
	}
	return append([]model.LexiconEntry(nil), l.byMood[idx]...)
}

// AllEntries returns every entry, grouped by mood in declaration order.
func (l *Lexicon) AllEntries() []model.LexiconEntry {
	var out []model.LexiconEntry
	for _, list := range l.byMood {
		out = append(out, list...)
	}
	return out
}

// Len returns the total number of entries.
func (l *Lexicon) Len() int {
	n := 0
	for _, list := range l.byMood {
		n += len(list)
	}
	return n
}

// IsStopword reports whether a word should be excluded from theme extraction.
func (l *Lexicon) IsStopword(word string) bool {
	word = strings.ToLower(word)
	if utf8.RuneCountInString(word) < MinWordLength {
		return true
	}
	_, ok := l.stopwords[word]
	return ok
}

// Stopwords returns the stopword set in sorted order.
func (l *Lexicon) Stopwords() []string {
	out := make([]string, 0, len(l.stopwords))
	for w := range l.stopwords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// WithStopwords returns a copy of the lexicon with additional stopwords.
func (l *Lexicon) WithStopwords(words []string) *Lexicon {
	out := &Lexicon{
		byMood:    l.byMood,
		stopwords: make(map[string]struct{}, len(l.stopwords)+len(words)),
	}
	for w := range l.stopwords {
		out.stopwords[w] = struct{}{}
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out.stopwords[w] = struct{}{}
		}
	}
	return out
}

func (l *Lexicon) entryMap() map[model.Mood][]model.LexiconEntry {
	out := make(map[model.Mood][]model.LexiconEntry, model.MoodCount)
	for i, list := range l.byMood {
		if len(list) == 0 {
			continue
		}
		out[model.MoodAt(i)] = append([]model.LexiconEntry(nil), list...)
	}
	return out
}
