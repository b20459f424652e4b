package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/stats"
)

func newLexiconCmd() *cobra.Command {
	var (
		moodName  string
		checkPath string
	)
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Print the active lexicon or validate a lexicon file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if checkPath != "" {
				lex, err := lexicon.LoadFile(checkPath, lexicon.Default())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d phrases, %d stopwords)\n", checkPath, lex.Len(), len(lex.Stopwords()))
				return err
			}
			entries := current.lex.AllEntries()
			if moodName != "" {
				mood, err := model.ParseMood(moodName)
				if err != nil {
					return err
				}
				entries = current.lex.EntriesFor(mood)
			}
			return stats.RenderLexicon(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().StringVar(&moodName, "mood", "", "only show phrases for this mood")
	cmd.Flags().StringVar(&checkPath, "check", "", "validate a lexicon TOML file")
	return cmd
}
