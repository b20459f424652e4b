package stats

import (
	"sort"

	"github.com/verte-zerg/moodlog/internal/model"
)

// MoodDistribution counts entries per mood, most frequent first with ties in
// mood order. Moods without entries are omitted.
func MoodDistribution(entries []model.JournalEntry) []model.MoodTally {
	var counts [model.MoodCount]int
	for _, e := range entries {
		if idx := e.Mood.Index(); idx >= 0 {
			counts[idx]++
		}
	}
	out := make([]model.MoodTally, 0, model.MoodCount)
	for i, n := range counts {
		if n > 0 {
			out = append(out, model.MoodTally{Mood: model.MoodAt(i), Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// AverageConfidence returns the mean stored confidence of entries.
func AverageConfidence(entries []model.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Confidence
	}
	return sum / float64(len(entries))
}

// MoodPoints converts entries to mood observations.
func MoodPoints(entries []model.JournalEntry) []model.MoodPoint {
	out := make([]model.MoodPoint, len(entries))
	for i, e := range entries {
		out[i] = e.Point()
	}
	return out
}

// Contents returns the text of every entry.
func Contents(entries []model.JournalEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Content
	}
	return out
}
