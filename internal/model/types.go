// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidArgument marks caller misuse, such as an unknown mood label.
var ErrInvalidArgument = errors.New("invalid argument")

// Mood is one of the ten fixed emotional labels.
type Mood string

// Moods in declaration order. The order is used for tie-breaks and display.
const (
	Happy      Mood = "happy"
	Excited    Mood = "excited"
	Energetic  Mood = "energetic"
	Content    Mood = "content"
	Calm       Mood = "calm"
	Sad        Mood = "sad"
	Anxious    Mood = "anxious"
	Angry      Mood = "angry"
	Irritated  Mood = "irritated"
	Frustrated Mood = "frustrated"
)

// MoodCount is the number of mood categories.
const MoodCount = 10

// MoodNeutral is assigned when there is no evidence for any mood.
const MoodNeutral = Content

var moodOrder = [MoodCount]Mood{
	Happy, Excited, Energetic, Content, Calm, Sad, Anxious, Angry, Irritated, Frustrated,
}

// Moods returns every mood in declaration order.
func Moods() []Mood {
	out := make([]Mood, MoodCount)
	copy(out, moodOrder[:])
	return out
}

// Index returns the declaration position of m, or -1 for an unknown mood.
func (m Mood) Index() int {
	for i, candidate := range moodOrder {
		if candidate == m {
			return i
		}
	}
	return -1
}

// Valid reports whether m is one of the ten moods.
func (m Mood) Valid() bool {
	return m.Index() >= 0
}

func (m Mood) String() string {
	return string(m)
}

// ParseMood normalizes and validates a mood label.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown mood %q", ErrInvalidArgument, s)
	}
	return m, nil
}

// MoodAt returns the mood at declaration position i.
func MoodAt(i int) Mood {
	return moodOrder[i]
}

// LexiconEntry associates a normalized phrase with weighted evidence for a mood.
type LexiconEntry struct {
	Mood   Mood
	Phrase string
	Weight float64
}

// Signal is one lexicon match found in a text.
type Signal struct {
	Phrase  string
	Mood    Mood
	Weight  float64
	Negated bool
	// Start and End are byte offsets of the matched span in the original text.
	Start int
	End   int
}

// Classification is the result of classifying one text.
type Classification struct {
	Mood         Mood
	Confidence   float64
	Signals      []Signal
	Insufficient bool
}

// BuzzWord is a recurring token and its frequency across many texts.
type BuzzWord struct {
	Word  string
	Count int
}

// MoodPoint is a mood observed at a moment in time.
type MoodPoint struct {
	At   time.Time
	Mood Mood
}

// HourBucket aggregates entries for one hour of the day.
type HourBucket struct {
	Hour       int
	Count      int
	Dominant   Mood
	MoodCounts [MoodCount]int
}

// HasDominant reports whether the bucket has any entries.
func (b HourBucket) HasDominant() bool {
	return b.Dominant != ""
}

// MoodTally pairs a mood with how often it occurred.
type MoodTally struct {
	Mood  Mood
	Count int
}

// JournalEntry is a stored journal entry with its analysis.
type JournalEntry struct {
	ID         string
	CreatedAt  time.Time
	Content    string
	Mood       Mood
	Confidence float64
	Analysis   string
}

// Point returns the entry as a mood observation.
func (e JournalEntry) Point() MoodPoint {
	return MoodPoint{At: e.CreatedAt, Mood: e.Mood}
}

// EntryFilter selects stored entries.
type EntryFilter struct {
	Since *time.Time
	Last  int
	Mood  Mood
}

// ReportConfig defines filters and options for report output.
type ReportConfig struct {
	Filter   EntryFilter
	TopWords int
}
