// Package main provides the CLI entrypoint for typefast.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typefast/internal/app"
	"github.com/verte-zerg/typefast/internal/config"
	"github.com/verte-zerg/typefast/internal/logging"
	"github.com/verte-zerg/typefast/internal/model"
	"github.com/verte-zerg/typefast/internal/settings"
	"github.com/verte-zerg/typefast/internal/tui"
	"github.com/verte-zerg/typefast/internal/wordsource"
)

const (
	defaultCapsRate  = 0.5
	defaultPunctRate = 0.5
	defaultPunctSet  = ".,!?;:"
	defaultLogLevel  = "info"
)

var (
	configPath    string
	practiceWords int
	practiceCorp  string
	skipMenu      bool
	practiceCaps  bool
	practicePunct bool
	practiceZen   bool
	capsRate      float64
	punctRate     float64
	punctSet      string
	logLevel      string
	logFile       string

	sampleWords int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typefast",
		Short:         "Terminal typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/typefast/config.toml)")
	rootCmd.PersistentFlags().StringVar(&practiceCorp, "corpus", "", "corpus file or name in the corpora directory (default: embedded english)")

	rootCmd.Flags().IntVar(&practiceWords, "wc", settings.DefaultWordCount, "words per prompt")
	rootCmd.Flags().BoolVar(&skipMenu, "skip-menu", false, "start typing immediately")
	rootCmd.Flags().BoolVar(&practiceCaps, "caps", false, "start with capitalization on")
	rootCmd.Flags().BoolVar(&practicePunct, "punct", false, "start with punctuation on")
	rootCmd.Flags().BoolVar(&practiceZen, "zen", false, "start in zen mode")
	rootCmd.Flags().Float64Var(&capsRate, "caps-rate", defaultCapsRate, "probability of a capitalized word when caps is on (0-1)")
	rootCmd.Flags().Float64Var(&punctRate, "punct-rate", defaultPunctRate, "probability of trailing punctuation when punct is on (0-1)")
	rootCmd.Flags().StringVar(&punctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path (default: $XDG_STATE_HOME/typefast/typefast.log)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCorpusCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typefast needs an interactive terminal")
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	if err := logging.Init(level, cfg.LogFile); err != nil {
		logErrf("logging disabled: %v\n", err)
	}
	defer func() {
		if cerr := logging.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	prompt := settings.Settings{
		WordCount:      cfg.Words,
		Capitalization: cfg.Caps,
		Punctuation:    cfg.Punct,
		Zen:            cfg.Zen,
	}
	ctrl := app.New(prompt, func() (*wordsource.Source, error) {
		return loadSource(cfg)
	})
	ctrl.Start(cfg.SkipMenu)

	logging.Infof("starting: %+v", cfg)
	program := tea.NewProgram(tui.NewModel(ctrl), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig layers explicit flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	p := fileCfg.Practice
	applyConfig(cmd, "wc", &practiceWords, p.Words)
	applyConfig(cmd, "corpus", &practiceCorp, p.Corpus)
	applyConfig(cmd, "skip-menu", &skipMenu, p.SkipMenu)
	applyConfig(cmd, "caps", &practiceCaps, p.Caps)
	applyConfig(cmd, "punct", &practicePunct, p.Punct)
	applyConfig(cmd, "zen", &practiceZen, p.Zen)
	applyConfig(cmd, "caps-rate", &capsRate, p.CapsRate)
	applyConfig(cmd, "punct-rate", &punctRate, p.PunctRate)
	applyConfig(cmd, "punct-set", &punctSet, p.PunctSet)
	applyConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		Words:     practiceWords,
		Corpus:    practiceCorp,
		SkipMenu:  skipMenu,
		Caps:      practiceCaps,
		Punct:     practicePunct,
		Zen:       practiceZen,
		CapsRate:  capsRate,
		PunctRate: punctRate,
		PunctSet:  punctSet,
		LogLevel:  logLevel,
		LogFile:   logFile,
	}
	if cfg.LogFile == "" {
		cfg.LogFile = config.DefaultLogPath()
	}
	return cfg, nil
}

// applyConfig copies a config file value into target unless the flag was
// set explicitly. Flags not registered on cmd are treated as unset.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--wc must be > 0")
	}
	if cfg.CapsRate < 0 || cfg.CapsRate > 1 {
		return fmt.Errorf("--caps-rate must be between 0 and 1")
	}
	if cfg.PunctRate < 0 || cfg.PunctRate > 1 {
		return fmt.Errorf("--punct-rate must be between 0 and 1")
	}
	if cfg.Punct && strings.TrimSpace(cfg.PunctSet) == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if strings.ContainsRune(cfg.PunctSet, wordsource.Boundary) {
		return fmt.Errorf("--punct-set must not contain %q", wordsource.Boundary)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func loadSource(cfg model.Config) (*wordsource.Source, error) {
	corpus, err := wordsource.Load(resolveCorpusPath(cfg.Corpus))
	if err != nil {
		return nil, err
	}
	opts := wordsource.Options{
		CapsRate:  cfg.CapsRate,
		PunctRate: cfg.PunctRate,
		PunctSet:  []rune(strings.Join(strings.Fields(cfg.PunctSet), "")),
	}
	return wordsource.New(corpus, opts), nil
}

// resolveCorpusPath accepts a path, or a bare name looked up in the
// corpora directory as name.toml then name.txt.
func resolveCorpusPath(corpus string) string {
	if corpus == "" || strings.ContainsRune(corpus, filepath.Separator) || filepath.Ext(corpus) != "" {
		return corpus
	}
	dir := config.DefaultCorpusDir()
	for _, ext := range []string{".toml", ".txt"} {
		candidate := filepath.Join(dir, corpus+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(dir, corpus+".toml")
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
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := writeDefaultConfig(path); err != nil {
		return err
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

// writeDefaultConfig creates the config file from the template unless it
// already exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Show the configured corpus and a sample phrase",
		Args:  cobra.NoArgs,
		RunE:  runCorpusCmd,
	}
	cmd.Flags().IntVar(&sampleWords, "sample", 10, "words in the sample phrase (0 to skip)")
	return cmd
}

func runCorpusCmd(cmd *cobra.Command, _ []string) error {
	corpus := practiceCorp
	if !cmd.Flags().Changed("corpus") {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Practice.Corpus != nil {
			corpus = *fileCfg.Practice.Corpus
		}
	}
	c, err := wordsource.Load(resolveCorpusPath(corpus))
	if err != nil {
		if errors.Is(err, wordsource.ErrCorpusLoad) {
			printAvailableCorpora(corpus)
		}
		return err
	}
	out := cmd.OutOrStdout()
	lines := []string{
		fmt.Sprintf("name: %s", c.Name),
		fmt.Sprintf("words: %d", len(c.Words)),
		fmt.Sprintf("ordered by frequency: %t", c.OrderedByFrequency),
		fmt.Sprintf("no lazy mode: %t", c.NoLazyMode),
	}
	if sampleWords > 0 {
		src := wordsource.New(c, wordsource.DefaultOptions())
		s := settings.Settings{WordCount: sampleWords}
		sample := strings.ReplaceAll(string(src.Generate(&s)), string(wordsource.Boundary), " ")
		lines = append(lines, fmt.Sprintf("sample: %s", sample))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func printAvailableCorpora(requested string) {
	dir := config.DefaultCorpusDir()
	names := availableCorpora(dir)
	if len(names) == 0 {
		logErrf("No corpora found in %s\n", dir)
		return
	}
	if suggestion := suggestCorpus(requested, names); suggestion != "" {
		logErrf("Did you mean %q?\n", suggestion)
	}
	logErrf("Available corpora: %s\n", strings.Join(names, ", "))
}

func availableCorpora(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".toml" && ext != ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names
}

// suggestCorpus returns the best fuzzy match for a bare corpus name.
func suggestCorpus(requested string, names []string) string {
	base := strings.TrimSuffix(filepath.Base(requested), filepath.Ext(requested))
	if base == "" || base == "." {
		return ""
	}
	matches := fuzzy.Find(base, names)
	if len(matches) == 0 || matches[0].Str == base {
		return ""
	}
	return matches[0].Str
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typefast configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d              # Words per prompt
# corpus = ""             # Corpus file or name in %s
# skip-menu = false       # Start typing immediately
# caps = false            # Start with capitalization on
# punct = false           # Start with punctuation on
# zen = false             # Start in zen mode
# caps-rate = %.2f        # Probability of a capitalized word (0-1)
# punct-rate = %.2f       # Probability of trailing punctuation (0-1)
# punct-set = %q      # Punctuation set

[log]
# level = %q          # debug, info, warn, error
# file = %q
`,
		settings.DefaultWordCount,
		config.DefaultCorpusDir(),
		defaultCapsRate,
		defaultPunctRate,
		defaultPunctSet,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
