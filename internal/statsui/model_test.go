package statsui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "moodlog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insert(t *testing.T, st *store.Store, hour int, mood model.Mood, content string) {
	t.Helper()
	_, err := st.InsertEntry(context.Background(), model.JournalEntry{
		CreatedAt:  time.Date(2024, 1, 15, hour, 0, 0, 0, time.UTC),
		Content:    content,
		Mood:       mood,
		Confidence: 0.5,
	})
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}
}

func TestModelBuildsTabs(t *testing.T) {
	st := newTestStore(t)
	insert(t, st, 9, model.Happy, "Great morning run with friends.")
	insert(t, st, 9, model.Sad, "Missing my friends today.")

	m := NewModel(st, lexicon.Default(), model.ReportConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if rows := m.hourlyTable.Rows(); len(rows) != 24 || rows[9][2] != string(model.Happy) || rows[0][2] != "-" {
		t.Fatalf("unexpected hourly rows: %v", rows)
	}
	if rows := m.themesTable.Rows(); len(rows) == 0 || rows[0][1] != "friends" || rows[0][2] != "2" {
		t.Fatalf("unexpected theme rows: %v", rows)
	}
	if view := m.View(); !strings.Contains(view, "Overview") || !strings.Contains(view, "Entries") {
		t.Fatalf("overview not rendered:\n%s", view)
	}
}

func TestReloadPicksUpNewEntries(t *testing.T) {
	st := newTestStore(t)
	m := NewModel(st, lexicon.Default(), model.ReportConfig{})
	if len(m.report.Entries) != 0 {
		t.Fatalf("expected empty report")
	}
	insert(t, st, 22, model.Calm, "Quiet evening with tea.")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if len(m.report.Entries) != 1 || m.report.Hourly[22].Dominant != model.Calm {
		t.Fatalf("reload did not refresh report: %+v", m.report.Hourly[22])
	}
}

func TestMoveTabWraps(t *testing.T) {
	m := NewModel(newTestStore(t), nil, model.ReportConfig{})
	m.moveTab(-1)
	if m.activeTab != tabThemes || !m.themesTable.Focused() {
		t.Fatalf("expected themes tab focused, got %d", m.activeTab)
	}
	m.moveTab(1)
	if m.activeTab != tabOverview || m.themesTable.Focused() {
		t.Fatalf("expected overview tab, got %d", m.activeTab)
	}
}

func TestApplyFilter(t *testing.T) {
	m := NewModel(newTestStore(t), nil, model.ReportConfig{})
	m.filterInputs[0].SetValue("Calm")
	m.filterInputs[1].SetValue("2024-01-02")
	m.filterInputs[2].SetValue("5")
	m.filterInputs[3].SetValue("3")
	if err := m.applyFilter(); err != nil {
		t.Fatalf("apply filter: %v", err)
	}
	if m.cfg.Filter.Mood != model.Calm || m.cfg.Filter.Last != 5 || m.cfg.TopWords != 3 || m.cfg.Filter.Since == nil {
		t.Fatalf("unexpected config: %+v", m.cfg)
	}

	m.filterInputs[0].SetValue("bored")
	if err := m.applyFilter(); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
	m.filterInputs[0].SetValue("")
	m.filterInputs[2].SetValue("-1")
	if err := m.applyFilter(); err == nil {
		t.Fatalf("expected error for negative last")
	}
}

func TestTopWordsSteps(t *testing.T) {
	cases := []struct {
		in, next, prev int
	}{
		{1, 5, 1},
		{5, 10, 1},
		{10, 15, 5},
		{12, 15, 10},
		{50, 50, 45},
	}
	for _, tc := range cases {
		if got := nextTopWords(tc.in); got != tc.next {
			t.Fatalf("nextTopWords(%d) = %d, want %d", tc.in, got, tc.next)
		}
		if got := prevTopWords(tc.in); got != tc.prev {
			t.Fatalf("prevTopWords(%d) = %d, want %d", tc.in, got, tc.prev)
		}
	}
}
