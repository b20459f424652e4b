package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	got := wrapText("Language such as calm suggests a calm mood", 16)
	want := "Language such as\ncalm suggests a\ncalm mood"
	if got != want {
		t.Fatalf("unexpected wrap:\n%s", got)
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	got := wrapText("overthinking", 5)
	if got != "overt\nhinki\nng" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextRespectsWideRunes(t *testing.T) {
	got := wrapText("日本語 の 日記", 6)
	for _, line := range strings.Split(got, "\n") {
		if w := runewidth.StringWidth(line); w > 6 {
			t.Fatalf("line %q is %d columns wide", line, w)
		}
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	if got := wrapText("a\nb", 0); got != "a b" {
		t.Fatalf("unexpected output: %q", got)
	}
}
