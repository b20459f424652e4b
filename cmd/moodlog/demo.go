package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/moodlog/internal/generator"
	"github.com/verte-zerg/moodlog/internal/logging"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/store"
)

const (
	defaultDemoEntries = 40
	defaultDemoDays    = 14
)

func newDemoCmd() *cobra.Command {
	var (
		entries int
		days    int
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed the journal with generated sample entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := generator.New()
			if cmd.Flags().Changed("seed") {
				gen = generator.NewSeeded(seed)
			}
			drafts, err := gen.Generate(current.lex, entries, days, time.Now())
			if err != nil {
				return err
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(st)

			saved, err := seedDrafts(context.Background(), st, drafts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d demo entries over %d days.\n", saved, days)
			return err
		},
	}
	cmd.Flags().IntVar(&entries, "entries", defaultDemoEntries, "number of entries to generate")
	cmd.Flags().IntVar(&days, "days", defaultDemoDays, "spread entries over the last N days")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible data")
	return cmd
}

// seedDrafts classifies each draft with the configured classifier and stores it.
func seedDrafts(ctx context.Context, st *store.Store, drafts []generator.Draft) (int, error) {
	saved := 0
	for _, d := range drafts {
		result := current.classifier.Classify(d.Text)
		entry := model.JournalEntry{
			CreatedAt:  d.At,
			Content:    d.Text,
			Mood:       result.Mood,
			Confidence: result.Confidence,
			Analysis:   current.classifier.ExplainClassification(d.Text, result),
		}
		if _, err := st.InsertEntry(ctx, entry); err != nil {
			return saved, fmt.Errorf("failed to save demo entry: %w", err)
		}
		if result.Mood != d.Intended {
			logging.Debug("demo entry classified differently", "intended", d.Intended, "mood", result.Mood)
		}
		saved++
	}
	return saved, nil
}
