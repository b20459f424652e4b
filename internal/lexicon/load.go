package lexicon

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/moodlog/internal/model"
)

// FileLexicon represents a lexicon TOML file.
//
//	replace = false
//	stopwords = ["work"]
//	[moods.happy]
//	"over the moon" = 3.0
type FileLexicon struct {
	Replace   bool                          `toml:"replace"`
	Stopwords []string                      `toml:"stopwords"`
	Moods     map[string]map[string]float64 `toml:"moods"`
}

// LoadFile reads a lexicon file and merges it over base. A nil base or
// replace = true starts from an empty lexicon.
func LoadFile(path string, base *Lexicon) (*Lexicon, error) {
	if path == "" {
		return nil, fmt.Errorf("lexicon path is empty")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only lexicon.
			_ = cerr
		}
	}()
	return Decode(file, base)
}

// Decode parses a lexicon document from r and merges it over base.
func Decode(r io.Reader, base *Lexicon) (*Lexicon, error) {
	var fl FileLexicon
	md, err := toml.NewDecoder(r).Decode(&fl)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown lexicon keys: %s", model.ErrInvalidArgument, strings.Join(keys, ", "))
	}
	return fl.merge(base)
}

func (fl FileLexicon) merge(base *Lexicon) (*Lexicon, error) {
	entries := map[model.Mood][]model.LexiconEntry{}
	var stopwords []string
	if base != nil && !fl.Replace {
		entries = base.entryMap()
		stopwords = base.Stopwords()
	}

	moodKeys := make([]string, 0, len(fl.Moods))
	for k := range fl.Moods {
		moodKeys = append(moodKeys, k)
	}
	sort.Strings(moodKeys)
	for _, key := range moodKeys {
		mood, err := model.ParseMood(key)
		if err != nil {
			return nil, fmt.Errorf("invalid lexicon section [moods.%s]: %w", key, err)
		}
		phrases := make([]string, 0, len(fl.Moods[key]))
		for p := range fl.Moods[key] {
			phrases = append(phrases, p)
		}
		sort.Strings(phrases)
		list := entries[mood]
		for _, phrase := range phrases {
			weight := fl.Moods[key][phrase]
			norm := NormalizePhrase(phrase)
			replaced := false
			for i := range list {
				if list[i].Phrase == norm {
					list[i].Weight = weight
					replaced = true
					break
				}
			}
			if !replaced {
				list = append(list, model.LexiconEntry{Mood: mood, Phrase: norm, Weight: weight})
			}
		}
		entries[mood] = list
	}
	stopwords = append(stopwords, fl.Stopwords...)
	return New(entries, stopwords)
}
