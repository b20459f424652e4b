package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/moodlog/internal/model"
)

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestRenderEntriesTruncatesContent(t *testing.T) {
	entries := []model.JournalEntry{{
		CreatedAt:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		Content:    "Feeling anxious about work.\nKeep overthinking everything.",
		Mood:       model.Anxious,
		Confidence: 0.85,
	}}
	var buf bytes.Buffer
	if err := RenderEntries(&buf, entries, 20); err != nil {
		t.Fatalf("render entries: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2024-01-15 09:30", "anxious", "85%", "Feeling anxious a..."} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderHourlyTableListsAllHours(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHourlyTable(&buf, HourlyBreakdown(nil)); err != nil {
		t.Fatalf("render hourly: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "00:00") || !strings.Contains(out, "23:00") || !strings.Contains(out, "none") {
		t.Fatalf("unexpected hourly table:\n%s", out)
	}
}

func TestRenderDistributionColor(t *testing.T) {
	tallies := []model.MoodTally{{Mood: model.Calm, Count: 2}, {Mood: model.Sad, Count: 1}}
	var plain, colored bytes.Buffer
	if err := RenderDistribution(&plain, tallies, false); err != nil {
		t.Fatalf("render distribution: %v", err)
	}
	if err := RenderDistribution(&colored, tallies, true); err != nil {
		t.Fatalf("render distribution: %v", err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output must not contain escapes")
	}
	if !strings.Contains(colored.String(), moodColors[model.Calm]) {
		t.Fatalf("colored output missing calm color")
	}
}

func TestShouldUseColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if ShouldUseColor(&bytes.Buffer{}, false) {
		t.Fatalf("buffer is not a terminal")
	}
	if !ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("force should enable color")
	}
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("NO_COLOR must disable color")
	}
}
