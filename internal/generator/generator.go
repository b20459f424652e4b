// Package generator builds demo journal entries.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
)

const (
	firstHour = 7
	lastHour  = 22
)

var cueTemplates = []string{
	"One word for today: %s.",
	"If I had to sum it up: %s.",
	"Mostly %s, if I'm honest.",
	"Writing it down anyway: %s.",
	"The feeling that stuck with me was %s.",
}

var fillers = []string{
	"Work ran long again and the project deadline moved.",
	"Took the dog for a walk after dinner.",
	"Coffee with an old friend in the morning.",
	"The team meeting took most of the afternoon.",
	"Spent the evening cooking and listening to music.",
	"Went to the gym before work.",
	"Called my family over the weekend plans.",
	"Read a few chapters of my book on the train.",
	"The weather was grey and the bus was late.",
	"Finally cleaned the apartment and did laundry.",
	"Had a long conversation with my partner about money.",
	"Studied for the exam at the library.",
}

// Draft is a generated entry before classification.
type Draft struct {
	At       time.Time
	Text     string
	Intended model.Mood
}

// Generator produces randomized demo entries.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator whose output is fixed by seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate composes count drafts spread over the days before now, oldest
// first. Each draft quotes one or two cues of a randomly chosen mood.
func (g *Generator) Generate(lex *lexicon.Lexicon, count, days int, now time.Time) ([]Draft, error) {
	weights := make([]float64, model.MoodCount)
	for _, mood := range model.Moods() {
		weights[mood.Index()] = float64(len(lex.EntriesFor(mood)))
	}
	return g.GenerateWeighted(lex, count, days, now, weights)
}

// GenerateWeighted is Generate with a per-mood selection weight, indexed in
// mood order. Moods with no lexicon entries are never chosen.
func (g *Generator) GenerateWeighted(lex *lexicon.Lexicon, count, days int, now time.Time, weights []float64) ([]Draft, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: entry count must be positive", model.ErrInvalidArgument)
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", model.ErrInvalidArgument)
	}
	if len(weights) != model.MoodCount {
		return nil, fmt.Errorf("%w: expected %d mood weights, got %d", model.ErrInvalidArgument, model.MoodCount, len(weights))
	}
	weights = append([]float64(nil), weights...)
	total := 0.0
	for i, w := range weights {
		if len(lex.EntriesFor(model.MoodAt(i))) == 0 || w < 0 {
			weights[i] = 0
		}
		total += weights[i]
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: no mood can be generated", model.ErrInvalidArgument)
	}

	drafts := make([]Draft, 0, count)
	for i := 0; i < count; i++ {
		mood := model.MoodAt(pickWeighted(g.rnd, weights, total))
		drafts = append(drafts, Draft{
			At:       g.timestamp(now, days),
			Text:     g.compose(lex.EntriesFor(mood)),
			Intended: mood,
		})
	}
	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].At.Before(drafts[j].At)
	})
	return drafts, nil
}

func (g *Generator) compose(cues []model.LexiconEntry) string {
	parts := []string{fillers[g.rnd.Intn(len(fillers))]}
	parts = append(parts, g.cueSentence(cues))
	if g.rnd.Float64() < 0.5 {
		parts = append(parts, g.cueSentence(cues))
	}
	if g.rnd.Float64() < 0.3 {
		parts = append(parts, fillers[g.rnd.Intn(len(fillers))])
	}
	return strings.Join(parts, " ")
}

func (g *Generator) cueSentence(cues []model.LexiconEntry) string {
	cue := cues[g.rnd.Intn(len(cues))].Phrase
	return capitalize(fmt.Sprintf(cueTemplates[g.rnd.Intn(len(cueTemplates))], cue))
}

func (g *Generator) timestamp(now time.Time, days int) time.Time {
	day := now.AddDate(0, 0, -g.rnd.Intn(days))
	hour := firstHour + g.rnd.Intn(lastHour-firstHour+1)
	minute := g.rnd.Intn(60)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
}

func pickWeighted(rnd *rand.Rand, weights []float64, total float64) int {
	r := rnd.Float64() * total
	acc := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if r < acc {
			return i
		}
	}
	return last
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
