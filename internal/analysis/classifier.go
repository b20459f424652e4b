// Package analysis classifies journal text into moods and explains the result.
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
)

// MinimumLength is the number of non-blank runes a text needs before it is
// classified. Callers are expected to check HasSignal and skip shorter drafts.
const MinimumLength = 10

const (
	defaultMaxInputRunes    = 20000
	defaultNegationWindow   = 3
	defaultNegationFraction = 0.5
)

// Options tunes a Classifier. Zero values select the defaults.
type Options struct {
	MinLength        int
	MaxInputRunes    int
	NegationWindow   int
	NegationFraction float64
}

// opposite receives a share of a negated cue's weight.
var opposite = map[model.Mood]model.Mood{
	model.Happy:      model.Sad,
	model.Excited:    model.Content,
	model.Energetic:  model.Calm,
	model.Content:    model.Frustrated,
	model.Calm:       model.Anxious,
	model.Sad:        model.Content,
	model.Anxious:    model.Calm,
	model.Angry:      model.Calm,
	model.Irritated:  model.Calm,
	model.Frustrated: model.Content,
}

var negationMarkers = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nor": {}, "cannot": {}, "without": {},
	"dont": {}, "didnt": {}, "doesnt": {}, "isnt": {}, "wasnt": {}, "arent": {}, "werent": {},
	"cant": {}, "wont": {}, "couldnt": {}, "wouldnt": {}, "shouldnt": {}, "havent": {}, "hasnt": {},
	"aint": {},
}

type phrase struct {
	entry  model.LexiconEntry
	tokens []string
}

// Classifier scores text against a lexicon. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	lex     *lexicon.Lexicon
	opts    Options
	byFirst map[string][]phrase
}

// NewClassifier builds a Classifier over lex. A nil lex uses the built-in lexicon.
func NewClassifier(lex *lexicon.Lexicon, opts Options) *Classifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	if opts.MinLength <= 0 {
		opts.MinLength = MinimumLength
	}
	if opts.MaxInputRunes <= 0 {
		opts.MaxInputRunes = defaultMaxInputRunes
	}
	if opts.NegationWindow <= 0 {
		opts.NegationWindow = defaultNegationWindow
	}
	if opts.NegationFraction <= 0 || opts.NegationFraction > 1 {
		opts.NegationFraction = defaultNegationFraction
	}
	c := &Classifier{lex: lex, opts: opts, byFirst: map[string][]phrase{}}
	for _, e := range lex.AllEntries() {
		tokens := lexicon.Words(e.Phrase)
		c.byFirst[tokens[0]] = append(c.byFirst[tokens[0]], phrase{entry: e, tokens: tokens})
	}
	return c
}

// Lexicon returns the lexicon the classifier scores against.
func (c *Classifier) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// MinLength returns the rune count below which text is not classified.
func (c *Classifier) MinLength() int {
	return c.opts.MinLength
}

// HasSignal reports whether text is long enough to classify.
func (c *Classifier) HasSignal(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= c.opts.MinLength
}

// Classify assigns a mood and confidence to text. Short text yields the
// neutral mood with zero confidence and Insufficient set.
func (c *Classifier) Classify(text string) model.Classification {
	if !c.HasSignal(text) {
		return model.Classification{Mood: model.MoodNeutral, Insufficient: true}
	}
	signals := c.match(c.capInput(text))

	var scores [model.MoodCount]float64
	for _, s := range signals {
		idx := s.Mood.Index()
		if !s.Negated {
			scores[idx] += s.Weight
			continue
		}
		scores[idx] -= s.Weight
		scores[opposite[s.Mood].Index()] += s.Weight * c.opts.NegationFraction
	}

	best := 0
	total := 0.0
	for i, score := range scores {
		if score > 0 {
			total += score
		}
		if score > scores[best] {
			best = i
		}
	}
	result := model.Classification{Mood: model.MoodNeutral, Signals: signals}
	if scores[best] <= 0 || total <= 0 {
		return result
	}
	result.Mood = model.MoodAt(best)
	result.Confidence = clamp01(scores[best] / total)
	return result
}

// match scans text left to right and keeps the longest lexicon phrase starting
// at each token. Tokens covered by a match are not matched again and never act
// as negation markers for later cues.
func (c *Classifier) match(text string) []model.Signal {
	tokens := lexicon.Tokenize(text)
	covered := make([]bool, len(tokens))
	type hit struct {
		at      int
		phrases []phrase
	}
	var hits []hit
	for i := 0; i < len(tokens); {
		var longest []phrase
		n := 0
		for _, p := range c.byFirst[tokens[i].Text] {
			if !matchesAt(tokens, i, p.tokens) {
				continue
			}
			switch {
			case len(p.tokens) > n:
				longest, n = []phrase{p}, len(p.tokens)
			case len(p.tokens) == n:
				longest = append(longest, p)
			}
		}
		if n == 0 {
			i++
			continue
		}
		hits = append(hits, hit{at: i, phrases: longest})
		for k := i; k < i+n; k++ {
			covered[k] = true
		}
		i += n
	}

	var signals []model.Signal
	for _, h := range hits {
		negated := c.negatedAt(tokens, covered, h.at)
		for _, p := range h.phrases {
			signals = append(signals, model.Signal{
				Phrase:  p.entry.Phrase,
				Mood:    p.entry.Mood,
				Weight:  p.entry.Weight,
				Negated: negated,
				Start:   tokens[h.at].Start,
				End:     tokens[h.at+len(p.tokens)-1].End,
			})
		}
	}
	return signals
}

// negatedAt looks back from token i for a negation marker, stopping at the
// previous clause break.
func (c *Classifier) negatedAt(tokens []lexicon.Token, covered []bool, i int) bool {
	for j := i - 1; j >= 0 && j >= i-c.opts.NegationWindow; j-- {
		if tokens[j].Break {
			return false
		}
		if covered[j] {
			continue
		}
		if isNegation(tokens[j].Text) {
			return true
		}
	}
	return false
}

func (c *Classifier) capInput(text string) string {
	if utf8.RuneCountInString(text) <= c.opts.MaxInputRunes {
		return text
	}
	n := 0
	for i := range text {
		if n == c.opts.MaxInputRunes {
			return text[:i]
		}
		n++
	}
	return text
}

func matchesAt(tokens []lexicon.Token, i int, want []string) bool {
	if i+len(want) > len(tokens) {
		return false
	}
	for k, w := range want {
		if tokens[i+k].Text != w {
			return false
		}
		if k < len(want)-1 && tokens[i+k].Break {
			return false
		}
	}
	return true
}

func isNegation(word string) bool {
	if _, ok := negationMarkers[word]; ok {
		return true
	}
	return strings.HasSuffix(word, "n't")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
