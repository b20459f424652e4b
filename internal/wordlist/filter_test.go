package wordlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsWord(t *testing.T) {
	for _, word := range []string{"hello", "résumé", "don't", "naïve", "2024"} {
		if !IsWord(word) {
			t.Fatalf("expected %q to be a word", word)
		}
	}
	for _, word := range []string{"", "co-op", "two words", "'tis", "dogs'"} {
		if IsWord(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterAndDedupe(t *testing.T) {
	got := Dedupe(Filter([]string{"work", "a b", "work", "gym"}, IsWord))
	if !reflect.DeepEqual(got, []string{"work", "gym"}) {
		t.Fatalf("unexpected words: %v", got)
	}
}

func TestLoadStopwords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	content := "# custom stopwords\nToday\n\nfeel\ntoday\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	got, err := LoadStopwords(path)
	if err != nil {
		t.Fatalf("load stopwords: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"today", "feel"}) {
		t.Fatalf("unexpected stopwords: %v", got)
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("not one word\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := LoadStopwords(bad); err == nil {
		t.Fatalf("expected error for multi-word line")
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("# only a comment\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := LoadStopwords(empty); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
