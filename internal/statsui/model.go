// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/moodlog/internal/logging"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/stats"
	"github.com/verte-zerg/moodlog/internal/store"
	"github.com/verte-zerg/moodlog/internal/tui"
)

const (
	tabOverview = iota
	tabHourly
	tabThemes
)

const (
	minTopWords = 5
	maxTopWords = 50
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	stop  stats.StopwordChecker
	cfg   model.ReportConfig

	report stats.Report
	errMsg string

	tabs        []string
	activeTab   int
	overview    viewport.Model
	hourlyTable table.Model
	themesTable table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, stop stats.StopwordChecker, cfg model.ReportConfig) *Model {
	if cfg.TopWords <= 0 {
		cfg.TopWords = stats.DefaultTopWords
	}
	m := &Model{
		store:    st,
		stop:     stop,
		cfg:      cfg,
		tabs:     []string{"Overview", "Hourly", "Themes"},
		overview: viewport.New(0, 0),
	}
	m.hourlyTable = newTable(hourlyColumns())
	m.themesTable = newTable(themeColumns())
	m.initInputs()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderOverview()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.filterMode && msg.String() == "q") {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "r":
			m.refreshReport()
			return m, nil
		case "=":
			m.cfg.TopWords = nextTopWords(m.cfg.TopWords)
			m.refreshReport()
			return m, nil
		case "-":
			m.cfg.TopWords = prevTopWords(m.cfg.TopWords)
			m.refreshReport()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if t := m.activeTable(); t != nil {
				t.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if t := m.activeTable(); t != nil {
				t.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			if t := m.activeTable(); t != nil {
				*t, cmd = t.Update(msg)
				return m, cmd
			}
			m.overview, cmd = m.overview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) activeTable() *table.Model {
	switch m.activeTab {
	case tabHourly:
		return &m.hourlyTable
	case tabThemes:
		return &m.themesTable
	default:
		return nil
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Mood: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Top words: "),
	}
	m.setInputsFromConfig()
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromConfig() {
	m.filterInputs[0].SetValue(string(m.cfg.Filter.Mood))
	if m.cfg.Filter.Since != nil {
		m.filterInputs[1].SetValue(m.cfg.Filter.Since.Format("2006-01-02"))
	} else {
		m.filterInputs[1].SetValue("")
	}
	if m.cfg.Filter.Last > 0 {
		m.filterInputs[2].SetValue(strconv.Itoa(m.cfg.Filter.Last))
	} else {
		m.filterInputs[2].SetValue("")
	}
	m.filterInputs[3].SetValue(strconv.Itoa(m.cfg.TopWords))
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	for _, t := range []*table.Model{&m.hourlyTable, &m.themesTable} {
		t.SetWidth(m.width)
		t.SetHeight(maxInt(1, bodyHeight-1))
	}
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := (m.activeTab + delta + count) % count
	m.activeTab = next
	m.hourlyTable.Blur()
	m.themesTable.Blur()
	if t := m.activeTable(); t != nil {
		t.Focus()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	filters := padLines(m.renderFilterSummary(), m.width)
	return tabs + "\n" + filters
}

func (m *Model) renderFilterSummary() string {
	mood := string(m.cfg.Filter.Mood)
	if mood == "" {
		mood = "any"
	}
	since := "any"
	if m.cfg.Filter.Since != nil {
		since = m.cfg.Filter.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Filter.Last > 0 {
		last = strconv.Itoa(m.cfg.Filter.Last)
	}
	summary := fmt.Sprintf("Settings: mood=%s  since=%s  last=%s  top=%d", mood, since, last, m.cfg.TopWords)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	help := headerStyle.Render("Nav: left/right  Scroll: up/down  Top words: -/=  Reload: r  Settings: /  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody() string {
	if m.filterMode {
		return m.renderFilterForm()
	}
	if m.errMsg != "" {
		return "Failed to load stats."
	}
	switch m.activeTab {
	case tabHourly:
		if len(m.report.Entries) == 0 {
			return "No entries found."
		}
		return tableMutedStyle.Render(m.hourlyTable.View())
	case tabThemes:
		if len(m.report.BuzzWords) == 0 {
			return "No recurring themes yet."
		}
		return tableMutedStyle.Render(m.themesTable.View())
	default:
		return m.overview.View()
	}
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Settings (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.stop, m.cfg)
	if err != nil {
		logging.Error("failed to build report", "err", err)
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.report = report
	m.hourlyTable.SetRows(hourlyRows(report.Hourly))
	m.themesTable.SetRows(themeRows(report.BuzzWords))
	m.renderOverview()
}

func (m *Model) renderOverview() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(renderOverview(m.report, width))
}

func renderOverview(r stats.Report, width int) string {
	if len(r.Entries) == 0 {
		return "No entries found."
	}
	cards := renderSummaryCards(r, width)
	var buf bytes.Buffer
	if err := stats.RenderDistribution(&buf, r.Distribution, true); err != nil {
		return fmt.Sprintf("Failed to render distribution: %v", err)
	}
	spark := headerStyle.Render("Entries by hour (00-23)") + "\n[" + stats.Sparkline(stats.HourlyCounts(r.Hourly)) + "]"
	return strings.TrimRight(cards+"\n\n"+buf.String()+"\n"+spark, "\n")
}

func renderSummaryCards(r stats.Report, width int) string {
	topMood := "-"
	if len(r.Distribution) > 0 {
		top := r.Distribution[0].Mood
		topMood = tui.MoodStyle(top).Render(string(top))
	}
	cards := []string{
		metricCard("Entries", strconv.Itoa(len(r.Entries))),
		metricCard("Top mood", topMood),
		metricCard("Avg confidence", fmt.Sprintf("%.1f%%", r.AvgConfidence*100)),
		metricCard("Busiest hour", busiestHour(r.Hourly)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func busiestHour(buckets []model.HourBucket) string {
	best := -1
	for i, b := range buckets {
		if b.Count > 0 && (best < 0 || b.Count > buckets[best].Count) {
			best = i
		}
	}
	if best < 0 {
		return "-"
	}
	return fmt.Sprintf("%02d:00", buckets[best].Hour)
}

func hourlyColumns() []table.Column {
	return []table.Column{
		{Title: "Hour", Width: 6},
		{Title: "Count", Width: 6},
		{Title: "Dominant Mood", Width: 14},
	}
}

func hourlyRows(buckets []model.HourBucket) []table.Row {
	rows := make([]table.Row, 0, len(buckets))
	for _, b := range buckets {
		dominant := "-"
		if b.HasDominant() {
			dominant = string(b.Dominant)
		}
		rows = append(rows, table.Row{fmt.Sprintf("%02d:00", b.Hour), strconv.Itoa(b.Count), dominant})
	}
	return rows
}

func themeColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Word", Width: 20},
		{Title: "Count", Width: 6},
	}
}

func themeRows(words []model.BuzzWord) []table.Row {
	rows := make([]table.Row, 0, len(words))
	for i, w := range words {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), w.Word, strconv.Itoa(w.Count)})
	}
	return rows
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(1),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromConfig()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	idx = (idx + count) % count
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	var mood model.Mood
	if moodInput := strings.TrimSpace(m.filterInputs[0].Value()); moodInput != "" {
		parsed, err := model.ParseMood(moodInput)
		if err != nil {
			return fmt.Errorf("invalid mood %q", moodInput)
		}
		mood = parsed
	}

	var since *time.Time
	if sinceInput := strings.TrimSpace(m.filterInputs[1].Value()); sinceInput != "" {
		parsed, err := time.ParseInLocation("2006-01-02", sinceInput, time.Local)
		if err != nil {
			return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		since = &parsed
	}

	last := 0
	if lastInput := strings.TrimSpace(m.filterInputs[2].Value()); lastInput != "" {
		parsed, err := strconv.Atoi(lastInput)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		last = parsed
	}

	top := stats.DefaultTopWords
	if topInput := strings.TrimSpace(m.filterInputs[3].Value()); topInput != "" {
		parsed, err := strconv.Atoi(topInput)
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid top words (use integer >= 1)")
		}
		top = parsed
	}

	m.cfg = model.ReportConfig{
		Filter:   model.EntryFilter{Mood: mood, Since: since, Last: last},
		TopWords: top,
	}
	return nil
}

func nextTopWords(n int) int {
	if n < minTopWords {
		return minTopWords
	}
	return minInt(maxTopWords, (n/5+1)*5)
}

func prevTopWords(n int) int {
	if n <= minTopWords {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
