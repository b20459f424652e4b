package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/moodlog/internal/logging"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/stats"
)

const listContentWidth = 60

type signalJSON struct {
	Phrase  string  `json:"phrase"`
	Mood    string  `json:"mood"`
	Weight  float64 `json:"weight"`
	Negated bool    `json:"negated"`
	Text    string  `json:"text"`
}

type classifyJSON struct {
	Mood         string       `json:"mood"`
	Confidence   float64      `json:"confidence"`
	Insufficient bool         `json:"insufficient"`
	Signals      []signalJSON `json:"signals"`
	Explanation  string       `json:"explanation"`
}

func newClassifyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Detect the mood of a text (reads stdin without args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			result := current.classifier.Classify(text)
			explanation := current.classifier.ExplainClassification(text, result)
			if asJSON {
				return writeClassifyJSON(cmd.OutOrStdout(), text, result, explanation)
			}
			return writeClassification(cmd.OutOrStdout(), text, result, explanation)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func writeClassification(w io.Writer, text string, result model.Classification, explanation string) error {
	if _, err := fmt.Fprintf(w, "Mood: %s\nConfidence: %.1f%%\n", result.Mood, result.Confidence*100); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(result.Signals) > 0 {
		if _, err := fmt.Fprintln(w, "Signals:"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, s := range result.Signals {
			mark := "+"
			if s.Negated {
				mark = "-"
			}
			if _, err := fmt.Fprintf(w, "  %-10s %s%.1f  %q\n", s.Mood, mark, s.Weight, text[s.Start:s.End]); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	if _, err := fmt.Fprintf(w, "Explanation: %s\n", explanation); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeClassifyJSON(w io.Writer, text string, result model.Classification, explanation string) error {
	out := classifyJSON{
		Mood:         string(result.Mood),
		Confidence:   result.Confidence,
		Insufficient: result.Insufficient,
		Signals:      make([]signalJSON, 0, len(result.Signals)),
		Explanation:  explanation,
	}
	for _, s := range result.Signals {
		out.Signals = append(out.Signals, signalJSON{
			Phrase:  s.Phrase,
			Mood:    string(s.Mood),
			Weight:  s.Weight,
			Negated: s.Negated,
			Text:    text[s.Start:s.End],
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

func newExplainCmd() *cobra.Command {
	var moodName string
	cmd := &cobra.Command{
		Use:   "explain --mood MOOD [text]",
		Short: "Explain why a text reads as the given mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			mood, err := model.ParseMood(moodName)
			if err != nil {
				return err
			}
			explanation, err := current.classifier.Explain(text, mood)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), explanation); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&moodName, "mood", "", "mood to explain")
	if err := cmd.MarkFlagRequired("mood"); err != nil {
		panic(err)
	}
	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text]",
		Short: "Classify a journal entry and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			if !current.classifier.HasSignal(text) {
				return fmt.Errorf("%w: entry needs at least %d characters", model.ErrInvalidArgument, current.classifier.MinLength())
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(st)

			result := current.classifier.Classify(text)
			entry := model.JournalEntry{
				CreatedAt:  time.Now(),
				Content:    text,
				Mood:       result.Mood,
				Confidence: result.Confidence,
				Analysis:   current.classifier.ExplainClassification(text, result),
			}
			id, err := st.InsertEntry(context.Background(), entry)
			if err != nil {
				return fmt.Errorf("failed to save entry: %w", err)
			}
			logging.Debug("entry saved", "id", id, "mood", entry.Mood)
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\nMood: %s (%.1f%%)\n%s\n", id, entry.Mood, entry.Confidence*100, entry.Analysis); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := f.filter()
			if err != nil {
				return err
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(st)

			entries, err := st.ListEntries(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}
			return stats.RenderEntries(cmd.OutOrStdout(), entries, listContentWidth)
		},
	}
	f.register(cmd, false)
	return cmd
}
