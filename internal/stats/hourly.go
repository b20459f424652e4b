package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/moodlog/internal/model"
)

// HoursPerDay is the fixed number of hourly buckets.
const HoursPerDay = 24

// HourlyBreakdown buckets mood observations by hour of day in each timestamp's
// own location. It always returns 24 buckets ordered by hour; observations
// with an unknown mood are ignored.
func HourlyBreakdown(points []model.MoodPoint) []model.HourBucket {
	buckets := make([]model.HourBucket, HoursPerDay)
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, p := range points {
		idx := p.Mood.Index()
		if idx < 0 {
			continue
		}
		b := &buckets[p.At.Hour()]
		b.Count++
		b.MoodCounts[idx]++
	}
	for h := range buckets {
		buckets[h].Dominant = dominantMood(buckets[h].MoodCounts)
	}
	return buckets
}

func dominantMood(counts [model.MoodCount]int) model.Mood {
	best := -1
	for i, n := range counts {
		if n == 0 {
			continue
		}
		if best < 0 || n > counts[best] {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return model.MoodAt(best)
}

// HourlyCSVHeader is the header row of the hourly CSV export.
var HourlyCSVHeader = []string{"Hour", "Count", "Dominant Mood"}

// WriteHourlyCSV writes buckets as CSV with the columns Hour,Count,Dominant Mood.
func WriteHourlyCSV(w io.Writer, buckets []model.HourBucket) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(HourlyCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, b := range buckets {
		record := []string{strconv.Itoa(b.Hour), strconv.Itoa(b.Count), dominantLabel(b)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func dominantLabel(b model.HourBucket) string {
	if !b.HasDominant() {
		return "none"
	}
	return string(b.Dominant)
}

// HourlyCounts returns the bucket counts as a series.
func HourlyCounts(buckets []model.HourBucket) []float64 {
	out := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = float64(b.Count)
	}
	return out
}
