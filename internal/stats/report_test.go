package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "moodlog.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		{CreatedAt: base, Content: "Great workout this morning, full of energy.", Mood: model.Energetic, Confidence: 0.8},
		{CreatedAt: base.Add(30 * time.Minute), Content: "Morning coffee and a quiet workout.", Mood: model.Calm, Confidence: 0.6},
		{CreatedAt: base.Add(10 * time.Hour), Content: "Evening workout felt great.", Mood: model.Energetic, Confidence: 0.7},
	}
	for _, e := range entries {
		if _, err := st.InsertEntry(ctx, e); err != nil {
			t.Fatalf("insert entry: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, lexicon.Default(), model.ReportConfig{TopWords: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report.Entries))
	}
	if len(report.Distribution) != 2 || report.Distribution[0].Mood != model.Energetic || report.Distribution[0].Count != 2 {
		t.Fatalf("unexpected distribution: %+v", report.Distribution)
	}
	if report.AvgConfidence < 0.69 || report.AvgConfidence > 0.71 {
		t.Fatalf("unexpected average confidence: %v", report.AvgConfidence)
	}
	if len(report.Hourly) != 24 || report.Hourly[9].Count != 2 || report.Hourly[9].Dominant != model.Energetic {
		t.Fatalf("unexpected hour 9 bucket: %+v", report.Hourly[9])
	}
	if len(report.BuzzWords) != 2 || report.BuzzWords[0].Word != "workout" || report.BuzzWords[0].Count != 3 {
		t.Fatalf("unexpected buzzwords: %+v", report.BuzzWords)
	}

	filtered, err := BuildReport(ctx, st, lexicon.Default(), model.ReportConfig{Filter: model.EntryFilter{Mood: model.Calm}})
	if err != nil {
		t.Fatalf("build filtered report: %v", err)
	}
	if len(filtered.Entries) != 1 || filtered.Hourly[9].Dominant != model.Calm {
		t.Fatalf("unexpected filtered report: %+v", filtered)
	}
}

func TestNewReportEmpty(t *testing.T) {
	report := NewReport(nil, nil, 0)
	if len(report.Hourly) != 24 || len(report.Distribution) != 0 || report.AvgConfidence != 0 {
		t.Fatalf("unexpected empty report: %+v", report)
	}
}
