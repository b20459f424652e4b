package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/moodlog/internal/model"
)

const maxCues = 3

var moodDescriptions = map[model.Mood]string{
	model.Happy:      "positive language and a sense of accomplishment",
	model.Excited:    "anticipation and enthusiastic language",
	model.Energetic:  "motivation and physical energy",
	model.Content:    "satisfaction and a settled outlook",
	model.Calm:       "a relaxed, peaceful state of mind",
	model.Sad:        "low mood and a sense of loss",
	model.Anxious:    "worry and anticipatory stress",
	model.Angry:      "strong hostility or conflict",
	model.Irritated:  "annoyance with everyday friction",
	model.Frustrated: "feeling blocked or unable to make progress",
}

// Explain describes why text reads as mood, quoting only cues that occur in
// the text. An unknown mood fails with model.ErrInvalidArgument.
func (c *Classifier) Explain(text string, mood model.Mood) (string, error) {
	if !mood.Valid() {
		return "", fmt.Errorf("%w: unknown mood %q", model.ErrInvalidArgument, mood)
	}
	text = c.capInput(text)

	signals := c.match(text)
	var direct []model.Signal
	for _, s := range signals {
		if s.Mood == mood && !s.Negated {
			direct = append(direct, s)
		}
	}
	if cues := topCues(text, direct); len(cues) > 0 {
		verb := "suggest"
		if len(cues) == 1 {
			verb = "suggests"
		}
		return fmt.Sprintf("Language such as %s %s %s %s mood, reflecting %s.",
			joinQuoted(cues), verb, article(mood), mood, moodDescriptions[mood]), nil
	}

	var negated []model.Signal
	for _, s := range signals {
		if s.Negated && opposite[s.Mood] == mood {
			negated = append(negated, s)
		}
	}
	if cues := topCues(text, negated); len(cues) > 0 {
		return fmt.Sprintf("Negated cues such as %s point to %s %s mood, reflecting %s.",
			joinQuoted(cues), article(mood), mood, moodDescriptions[mood]), nil
	}

	if mood == model.MoodNeutral {
		return fmt.Sprintf("No strong emotional cues were found, so the entry reads as %s, the neutral default.", mood), nil
	}
	return fmt.Sprintf("No phrases associated with %s %s mood were found in this entry.", article(mood), mood), nil
}

// ExplainClassification explains a result previously returned by Classify.
func (c *Classifier) ExplainClassification(text string, result model.Classification) string {
	if result.Insufficient {
		return fmt.Sprintf("Not enough text to detect a mood yet; write at least %d characters.", c.opts.MinLength)
	}
	explanation, err := c.Explain(text, result.Mood)
	if err != nil {
		return ""
	}
	return explanation
}

// topCues returns up to maxCues distinct surface spans, strongest first.
func topCues(text string, signals []model.Signal) []string {
	sorted := append([]model.Signal(nil), signals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight == sorted[j].Weight {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Weight > sorted[j].Weight
	})
	seen := map[string]struct{}{}
	var cues []string
	for _, s := range sorted {
		if _, ok := seen[s.Phrase]; ok {
			continue
		}
		seen[s.Phrase] = struct{}{}
		cues = append(cues, text[s.Start:s.End])
		if len(cues) == maxCues {
			break
		}
	}
	return cues
}

func joinQuoted(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = `"` + item + `"`
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}

func article(mood model.Mood) string {
	if strings.ContainsRune("aeiou", rune(mood[0])) {
		return "an"
	}
	return "a"
}
