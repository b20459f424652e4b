package stats

import (
	"context"

	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Entries       []model.JournalEntry
	Distribution  []model.MoodTally
	AvgConfidence float64
	Hourly        []model.HourBucket
	BuzzWords     []model.BuzzWord
}

// BuildReport loads entries matching cfg and aggregates them.
func BuildReport(ctx context.Context, st *store.Store, stop StopwordChecker, cfg model.ReportConfig) (Report, error) {
	entries, err := st.ListEntries(ctx, cfg.Filter)
	if err != nil {
		return Report{}, err
	}
	return NewReport(entries, stop, cfg.TopWords), nil
}

// NewReport aggregates already loaded entries.
func NewReport(entries []model.JournalEntry, stop StopwordChecker, topWords int) Report {
	return Report{
		Entries:       entries,
		Distribution:  MoodDistribution(entries),
		AvgConfidence: AverageConfidence(entries),
		Hourly:        HourlyBreakdown(MoodPoints(entries)),
		BuzzWords:     ExtractBuzzWords(Contents(entries), topWords, stop),
	}
}
