package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/moodlog/internal/analysis"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/store"
)

func newTestModel(t *testing.T) (*Model, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "moodlog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	m := NewModel(analysis.NewClassifier(nil, analysis.Options{}), st)
	m.now = func() time.Time {
		return time.Date(2024, 1, 15, 21, 5, 0, 0, time.UTC)
	}
	return m, st
}

func TestTypingSchedulesDetection(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("I")})
	if cmd == nil {
		t.Fatalf("expected a detection command after typing")
	}
	if m.seq != 1 || m.input.Value() != "I" {
		t.Fatalf("unexpected state: seq=%d value=%q", m.seq, m.input.Value())
	}
}

func TestDetectIgnoresStaleTicks(t *testing.T) {
	m, _ := newTestModel(t)
	m.input.SetValue("Feeling calm and relaxed after yoga.")
	m.seq = 3

	m.Update(detectMsg{seq: 2})
	if m.live != nil {
		t.Fatalf("stale tick must not run detection")
	}
	m.Update(detectMsg{seq: 3})
	if m.live == nil || m.live.Mood != model.Calm {
		t.Fatalf("expected calm detection, got %+v", m.live)
	}
	if !strings.Contains(m.explanation, `"calm"`) {
		t.Fatalf("expected explanation to quote the cue: %s", m.explanation)
	}
}

func TestDetectSkipsShortText(t *testing.T) {
	m, _ := newTestModel(t)
	m.input.SetValue("sad")
	m.Update(detectMsg{seq: 0})
	if m.live != nil {
		t.Fatalf("short text must not be classified")
	}
	if !strings.Contains(m.renderMoodPanel(60), "Write a bit more") {
		t.Fatalf("expected hint for short text")
	}
}

func TestSubmitShortTextShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	m.input.SetValue("meh")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatalf("short text must not be saved")
	}
	if !m.statusErr || !strings.Contains(m.status, "at least 10 characters") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestSubmitSavesEntry(t *testing.T) {
	m, st := newTestModel(t)
	m.input.SetValue("I'm so excited and thrilled about my promotion!")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg, got %T", msg)
	}
	if saved.err != nil {
		t.Fatalf("save failed: %v", saved.err)
	}
	m.Update(saved)

	if m.input.Value() != "" || m.statusErr || m.totalEntries != 1 || m.lastMood != model.Excited {
		t.Fatalf("unexpected model after save: status=%q total=%d last=%s", m.status, m.totalEntries, m.lastMood)
	}
	entry, err := st.GetEntry(context.Background(), saved.entry.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if entry.Mood != model.Excited || entry.CreatedAt.Hour() != 21 || !strings.Contains(entry.Analysis, `"thrilled"`) {
		t.Fatalf("unexpected stored entry: %+v", entry)
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := &Model{totalEntries: 12, lastMood: model.Anxious}
	out := m.renderFooter()
	for _, want := range []string{"ctrl+s save", "esc quit", "Entries 12", "Last mood anxious"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}
