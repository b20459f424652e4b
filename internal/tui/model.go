// Package tui provides the Bubble Tea journal editor.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/moodlog/internal/analysis"
	"github.com/verte-zerg/moodlog/internal/logging"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/store"
)

// DetectDelay is how long typing must pause before live detection runs.
const DetectDelay = time.Second

type detectMsg struct {
	seq int
}

type savedMsg struct {
	entry model.JournalEntry
	err   error
}

// Model implements the Bubble Tea journal UI.
type Model struct {
	classifier *analysis.Classifier
	store      *store.Store
	now        func() time.Time

	input  textarea.Model
	width  int
	height int

	seq         int
	live        *model.Classification
	explanation string

	saving    bool
	status    string
	statusErr bool

	totalEntries int
	lastMood     model.Mood
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	panelStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7BD389"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a journal editor model.
func NewModel(classifier *analysis.Classifier, st *store.Store) *Model {
	input := textarea.New()
	input.Placeholder = "How are you feeling today?"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.Focus()
	m := &Model{
		classifier: classifier,
		store:      st,
		now:        time.Now,
		input:      input,
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case detectMsg:
		if msg.seq == m.seq {
			m.detect()
		}
		return m, nil
	case savedMsg:
		return m, m.handleSaved(msg)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m, m.submit()
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		m.seq++
		m.live = nil
		m.explanation = ""
		return m, tea.Batch(cmd, scheduleDetect(m.seq))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := m.contentWidth()
	sections := []string{
		titleStyle.Render("moodlog journal"),
		m.input.View(),
		panelStyle.Width(contentWidth).Render(m.renderMoodPanel(contentWidth - 4)),
	}
	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := m.renderFooter()
	if m.width == 0 || m.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func scheduleDetect(seq int) tea.Cmd {
	return tea.Tick(DetectDelay, func(time.Time) tea.Msg {
		return detectMsg{seq: seq}
	})
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * 0.70)
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) updateLayout() {
	m.input.SetWidth(m.contentWidth())
	h := m.height / 3
	if h < 3 {
		h = 3
	}
	m.input.SetHeight(h)
}

func (m *Model) detect() {
	text := m.input.Value()
	if !m.classifier.HasSignal(text) {
		m.live = nil
		m.explanation = ""
		return
	}
	result := m.classifier.Classify(text)
	m.live = &result
	m.explanation = m.classifier.ExplainClassification(text, result)
	logging.Debug("live mood detected", "mood", result.Mood, "confidence", result.Confidence)
}

func (m *Model) submit() tea.Cmd {
	if m.saving {
		return nil
	}
	text := strings.TrimSpace(m.input.Value())
	if !m.classifier.HasSignal(text) {
		m.status = fmt.Sprintf("Write at least %d characters before saving.", m.classifier.MinLength())
		m.statusErr = true
		return nil
	}
	result := m.classifier.Classify(text)
	entry := model.JournalEntry{
		CreatedAt:  m.now(),
		Content:    text,
		Mood:       result.Mood,
		Confidence: result.Confidence,
		Analysis:   m.classifier.ExplainClassification(text, result),
	}
	m.saving = true
	st := m.store
	return func() tea.Msg {
		id, err := st.InsertEntry(context.Background(), entry)
		entry.ID = id
		return savedMsg{entry: entry, err: err}
	}
}

func (m *Model) handleSaved(msg savedMsg) tea.Cmd {
	m.saving = false
	if msg.err != nil {
		logging.Error("failed to save entry", "err", msg.err)
		m.status = fmt.Sprintf("Failed to save entry: %v", msg.err)
		m.statusErr = true
		return nil
	}
	logging.Info("entry saved", "id", msg.entry.ID, "mood", msg.entry.Mood, "confidence", msg.entry.Confidence)
	m.status = fmt.Sprintf("Saved. Your companion senses you're feeling %s (%.0f%%).", msg.entry.Mood, msg.entry.Confidence*100)
	m.statusErr = false
	m.totalEntries++
	m.lastMood = msg.entry.Mood
	m.input.Reset()
	m.seq++
	m.live = nil
	m.explanation = ""
	return nil
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	counts, err := m.store.MoodCounts(ctx, model.EntryFilter{})
	if err != nil {
		logging.Warn("failed to load entry counts", "err", err)
		return
	}
	for _, n := range counts {
		m.totalEntries += n
	}
	last, err := m.store.ListEntries(ctx, model.EntryFilter{Last: 1})
	if err != nil {
		logging.Warn("failed to load last entry", "err", err)
		return
	}
	if len(last) > 0 {
		m.lastMood = last[0].Mood
	}
}

func (m *Model) renderMoodPanel(width int) string {
	if m.live == nil {
		if m.classifier.HasSignal(m.input.Value()) {
			return hintStyle.Render("Reading your mood...")
		}
		return hintStyle.Render(fmt.Sprintf("Write a bit more (at least %d characters) to detect your mood.", m.classifier.MinLength()))
	}
	header := fmt.Sprintf("Mood: %s  Confidence: %.0f%%", MoodStyle(m.live.Mood).Render(string(m.live.Mood)), m.live.Confidence*100)
	return header + "\n" + wrapText(m.explanation, width)
}

func (m *Model) renderFooter() string {
	segments := []string{"ctrl+s save", "esc quit", fmt.Sprintf("Entries %d", m.totalEntries)}
	if m.lastMood != "" {
		segments = append(segments, fmt.Sprintf("Last mood %s", m.lastMood))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
