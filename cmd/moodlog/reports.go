package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/moodlog/internal/stats"
)

func buildReport(cmd *cobra.Command, f *filterFlags) (stats.Report, error) {
	cfg, err := f.reportConfig(cmd)
	if err != nil {
		return stats.Report{}, err
	}
	st, err := openStore()
	if err != nil {
		return stats.Report{}, err
	}
	defer closeStore(st)

	report, err := stats.BuildReport(context.Background(), st, current.lex, cfg)
	if err != nil {
		return stats.Report{}, fmt.Errorf("failed to build report: %w", err)
	}
	return report, nil
}

func newThemesCmd() *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Show recurring words across entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := buildReport(cmd, &f)
			if err != nil {
				return err
			}
			return stats.RenderBuzzWords(cmd.OutOrStdout(), report.BuzzWords)
		},
	}
	f.register(cmd, true)
	return cmd
}

func newHourlyCmd() *cobra.Command {
	var (
		f       filterFlags
		asCSV   bool
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Show entry counts and dominant mood per hour of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := buildReport(cmd, &f)
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := writeFileAtomic(outPath, func(w io.Writer) error {
					return stats.WriteHourlyCSV(w, report.Hourly)
				}); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outPath)
				return err
			}
			if asCSV {
				return stats.WriteHourlyCSV(cmd.OutOrStdout(), report.Hourly)
			}
			return renderHourly(cmd.OutOrStdout(), report)
		},
	}
	f.register(cmd, false)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print CSV (Hour,Count,Dominant Mood)")
	cmd.Flags().StringVar(&outPath, "out", "", "write CSV to this file")
	return cmd
}

func renderHourly(w io.Writer, report stats.Report) error {
	if err := stats.RenderHourlyTable(w, report.Hourly); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Activity by hour: [%s]\n", stats.Sparkline(stats.HourlyCounts(report.Hourly))); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "moodlog-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := write(writer); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// printReport writes the plain-text form of the stats screen.
func printReport(w io.Writer, report stats.Report) error {
	if err := stats.RenderSummary(w, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(report.Entries) == 0 {
		return nil
	}
	useColor := stats.ShouldUseColor(w, false)
	if err := stats.RenderDistribution(w, report.Distribution, useColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderHourlyTable(w, report.Hourly); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderBuzzWords(w, report.BuzzWords); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
