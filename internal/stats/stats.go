// Package stats aggregates journal entries into themes, hourly activity and reports.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/moodlog/internal/model"
)

const (
	sparkChars  = " .:-=+*#%@"
	barWidth    = 30
	colorReset  = "\x1b[0m"
	noEntryText = "No entries found."
)

var moodColors = map[model.Mood]string{
	model.Happy:      "\x1b[33m",
	model.Excited:    "\x1b[35m",
	model.Energetic:  "\x1b[93m",
	model.Content:    "\x1b[32m",
	model.Calm:       "\x1b[36m",
	model.Sad:        "\x1b[34m",
	model.Anxious:    "\x1b[95m",
	model.Angry:      "\x1b[31m",
	model.Irritated:  "\x1b[91m",
	model.Frustrated: "\x1b[90m",
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// ShouldUseColor reports whether ANSI colors should be written to w.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// RenderSummary prints headline numbers for a report.
func RenderSummary(w io.Writer, r Report) error {
	if len(r.Entries) == 0 {
		_, err := fmt.Fprintln(w, noEntryText)
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Entries: %d\n", len(r.Entries)); err != nil {
		return err
	}
	if len(r.Distribution) > 0 {
		top := r.Distribution[0]
		if _, err := fmt.Fprintf(w, "Most frequent mood: %s (%d)\n", top.Mood, top.Count); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Avg confidence: %.2f%%\n", r.AvgConfidence*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "First entry: %s\n", r.Entries[0].CreatedAt.Format("2006-01-02 15:04")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Last entry: %s\n", r.Entries[len(r.Entries)-1].CreatedAt.Format("2006-01-02 15:04")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Activity by hour: [%s]\n", Sparkline(HourlyCounts(r.Hourly))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderDistribution prints one bar per mood scaled to the most frequent mood.
func RenderDistribution(w io.Writer, tallies []model.MoodTally, useColor bool) error {
	if len(tallies) == 0 {
		_, err := fmt.Fprintln(w, noEntryText)
		return err
	}
	if _, err := fmt.Fprintln(w, "Mood Distribution"); err != nil {
		return err
	}
	maxCount := tallies[0].Count
	total := 0
	for _, t := range tallies {
		total += t.Count
		if t.Count > maxCount {
			maxCount = t.Count
		}
	}
	headers := []string{"Mood", "Count", "Share", ""}
	rows := make([][]string, 0, len(tallies))
	for _, t := range tallies {
		bar := strings.Repeat("#", int(math.Round(float64(t.Count)/float64(maxCount)*barWidth)))
		if useColor {
			bar = moodColors[t.Mood] + bar + colorReset
		}
		rows = append(rows, []string{
			string(t.Mood),
			fmt.Sprintf("%d", t.Count),
			fmt.Sprintf("%.1f%%", float64(t.Count)/float64(total)*100),
			bar,
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true, 2: true}))
}

// RenderHourlyTable prints all 24 hour buckets.
func RenderHourlyTable(w io.Writer, buckets []model.HourBucket) error {
	if _, err := fmt.Fprintln(w, "Hourly Activity"); err != nil {
		return err
	}
	headers := []string{"Hour", "Count", "Dominant Mood"}
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			fmt.Sprintf("%02d:00", b.Hour),
			fmt.Sprintf("%d", b.Count),
			dominantLabel(b),
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true}))
}

// RenderBuzzWords prints ranked buzzwords.
func RenderBuzzWords(w io.Writer, words []model.BuzzWord) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No recurring themes found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Recurring Themes"); err != nil {
		return err
	}
	headers := []string{"#", "Word", "Count"}
	rows := make([][]string, 0, len(words))
	for i, bw := range words {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), bw.Word, fmt.Sprintf("%d", bw.Count)})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 2: true}))
}

// RenderEntries prints one row per entry with its content cut to contentWidth columns.
func RenderEntries(w io.Writer, entries []model.JournalEntry, contentWidth int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, noEntryText)
		return err
	}
	headers := []string{"Time", "Mood", "Conf", "Entry"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		content := strings.Join(strings.Fields(e.Content), " ")
		if contentWidth > 0 {
			content = runewidth.Truncate(content, contentWidth, "...")
		}
		rows = append(rows, []string{
			e.CreatedAt.Format("2006-01-02 15:04"),
			string(e.Mood),
			fmt.Sprintf("%.0f%%", e.Confidence*100),
			content,
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{2: true}))
}

// RenderLexicon prints lexicon phrases grouped by mood in mood order.
func RenderLexicon(w io.Writer, entries []model.LexiconEntry) error {
	headers := []string{"Mood", "Phrase", "Weight"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{string(e.Mood), e.Phrase, strconv.FormatFloat(e.Weight, 'f', -1, 64)})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{2: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
