// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads one word per line from the provided file path. Blank lines
// and lines starting with # are skipped; words are lowercased.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadStopwords reads a stopword list, rejecting lines that are not single
// words, and drops duplicates while keeping file order.
func LoadStopwords(path string) ([]string, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load stopwords: %w", err)
	}
	for i, w := range words {
		if !IsWord(w) {
			return nil, fmt.Errorf("stopword list %s: line %d entry %q is not a single word", path, i+1, w)
		}
	}
	return Dedupe(words), nil
}
