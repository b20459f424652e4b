// Package main provides the CLI entrypoint for moodlog.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/moodlog/internal/analysis"
	"github.com/verte-zerg/moodlog/internal/config"
	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/logging"
	"github.com/verte-zerg/moodlog/internal/model"
	"github.com/verte-zerg/moodlog/internal/stats"
	"github.com/verte-zerg/moodlog/internal/statsui"
	"github.com/verte-zerg/moodlog/internal/store"
	"github.com/verte-zerg/moodlog/internal/tui"
	"github.com/verte-zerg/moodlog/internal/wordlist"
)

const (
	defaultMinLength      = analysis.MinimumLength
	defaultMaxInput       = 20000
	defaultNegationWindow = 3
	defaultLogLevel       = "info"
)

var (
	rootLogLevel       string
	rootDBPath         string
	rootLexiconPath    string
	rootMinLength      int
	rootMaxInput       int
	rootNegationWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "moodlog",
		Short:             "Mood journal with rule-based mood detection",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: runSetup,
		RunE:              runJournalCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&rootDBPath, "db", "", "database path (default: XDG data dir)")
	flags.StringVar(&rootLexiconPath, "lexicon", "", "custom lexicon TOML merged over the built-in one")
	flags.IntVar(&rootMinLength, "min-length", defaultMinLength, "minimum characters before a mood is detected")
	flags.IntVar(&rootMaxInput, "max-input", defaultMaxInput, "maximum characters analysed per entry")
	flags.IntVar(&rootNegationWindow, "negation-window", defaultNegationWindow, "words before a cue checked for negation")

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newHourlyCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newLexiconCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// app carries the resolved configuration shared by subcommands.
type app struct {
	file       config.FileConfig
	lex        *lexicon.Lexicon
	classifier *analysis.Classifier
}

var current app

func runSetup(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &rootLogLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "lexicon", &rootLexiconPath, fileCfg.Lexicon.Path)
	applyIntConfig(cmd, "min-length", &rootMinLength, fileCfg.Classifier.MinLength)
	applyIntConfig(cmd, "max-input", &rootMaxInput, fileCfg.Classifier.MaxInput)
	applyIntConfig(cmd, "negation-window", &rootNegationWindow, fileCfg.Classifier.NegationWindow)

	if err := validateFlags(); err != nil {
		return err
	}
	if err := logging.Init(cmd.ErrOrStderr(), rootLogLevel); err != nil {
		return err
	}

	lex, err := loadLexicon(rootLexiconPath, fileCfg.Lexicon.Stopwords)
	if err != nil {
		return err
	}
	current = app{
		file: fileCfg,
		lex:  lex,
		classifier: analysis.NewClassifier(lex, analysis.Options{
			MinLength:      rootMinLength,
			MaxInputRunes:  rootMaxInput,
			NegationWindow: rootNegationWindow,
		}),
	}
	logging.Debug("configuration loaded", "lexicon_phrases", lex.Len(), "min_length", rootMinLength)
	return nil
}

func validateFlags() error {
	if rootMinLength <= 0 {
		return fmt.Errorf("--min-length must be > 0")
	}
	if rootMaxInput <= 0 {
		return fmt.Errorf("--max-input must be > 0")
	}
	if rootNegationWindow <= 0 {
		return fmt.Errorf("--negation-window must be > 0")
	}
	return nil
}

// loadLexicon merges an explicit or default-location lexicon file over the
// built-in table, then adds any extra stopwords.
func loadLexicon(path string, stopwordsPath *string) (*lexicon.Lexicon, error) {
	lex := lexicon.Default()
	explicit := path != ""
	if !explicit {
		path = config.DefaultLexiconPath()
	}
	if _, err := os.Stat(path); err == nil {
		loaded, err := lexicon.LoadFile(path, lex)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon %s: %w", path, err)
		}
		lex = loaded
		logging.Debug("custom lexicon loaded", "path", path)
	} else if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat lexicon: %w", err)
	}
	if stopwordsPath != nil && *stopwordsPath != "" {
		words, err := wordlist.LoadStopwords(*stopwordsPath)
		if err != nil {
			return nil, err
		}
		lex = lex.WithStopwords(words)
	}
	return lex, nil
}

func openStore() (*store.Store, error) {
	path := rootDBPath
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logging.Warn("failed to close db", "err", cerr)
	}
}

func runJournalCmd(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := logging.InitFile(config.DefaultLogPath(), rootLogLevel); err != nil {
		return err
	}
	defer logging.Close()

	m := tui.NewModel(current.classifier, st)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	var (
		f     filterFlags
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Browse mood stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if plain {
				report, err := buildReport(cmd, &f)
				if err != nil {
					return err
				}
				return printReport(cmd.OutOrStdout(), report)
			}
			cfg, err := f.reportConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(st)

			if err := logging.InitFile(config.DefaultLogPath(), rootLogLevel); err != nil {
				return err
			}
			defer logging.Close()

			m := statsui.NewModel(st, current.lex, cfg)
			program := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run stats TUI: %w", err)
			}
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the report instead of opening the TUI")
	return cmd
}

// filterFlags holds the entry selection flags shared by report commands.
type filterFlags struct {
	since string
	last  int
	mood  string
	top   int
}

func (f *filterFlags) register(cmd *cobra.Command, withTop bool) {
	cmd.Flags().StringVar(&f.since, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.last, "last", 0, "limit to last N entries")
	cmd.Flags().StringVar(&f.mood, "mood", "", "only entries with this mood")
	if withTop {
		cmd.Flags().IntVar(&f.top, "top", stats.DefaultTopWords, "number of buzzwords")
	}
}

func (f *filterFlags) filter() (model.EntryFilter, error) {
	var filter model.EntryFilter
	if f.since != "" {
		parsed, err := time.ParseInLocation("2006-01-02", f.since, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	if f.last < 0 {
		return filter, fmt.Errorf("--last must be >= 0")
	}
	filter.Last = f.last
	if f.mood != "" {
		mood, err := model.ParseMood(f.mood)
		if err != nil {
			return filter, err
		}
		filter.Mood = mood
	}
	return filter, nil
}

func (f *filterFlags) reportConfig(cmd *cobra.Command) (model.ReportConfig, error) {
	filter, err := f.filter()
	if err != nil {
		return model.ReportConfig{}, err
	}
	if cmd.Flags().Lookup("top") != nil {
		applyIntConfig(cmd, "top", &f.top, current.file.Report.Top)
		if f.top <= 0 {
			return model.ReportConfig{}, fmt.Errorf("--top must be > 0")
		}
	}
	return model.ReportConfig{Filter: filter, TopWords: f.top}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logging.Info("config created", "path", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# moodlog configuration
# Uncomment a value to enable it. CLI flags override config values.

[classifier]
# min-length = %d          # Characters required before a mood is detected
# max-input = %d        # Characters analysed per entry
# negation-window = %d      # Words before a cue checked for "not", "never", ...

[lexicon]
# path = %q               # Custom lexicon TOML merged over the built-in one
# stopwords = ""          # Extra stopwords for themes, one per line

[report]
# top = %d                 # Number of buzzwords in themes and stats

[log]
# level = %q           # debug, info, warn or error
`,
		defaultMinLength,
		defaultMaxInput,
		defaultNegationWindow,
		config.DefaultLexiconPath(),
		stats.DefaultTopWords,
		defaultLogLevel,
	)
}

// readText joins args, or reads stdin when no args are given.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no text given (pass it as arguments or on stdin)")
	}
	return text, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
