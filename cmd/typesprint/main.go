// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/logger"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/samples"
	"github.com/verte-zerg/typesprint/internal/script"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/tui"
)

const (
	defaultDifficulty = "easy"
	defaultLogLevel   = "warn"
)

var (
	practiceDifficulty string
	practiceSeed       int64
	practiceSamples    string
	logLevel           string
	logFile            string

	samplesDifficulty string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typesprint",
		Short:         "60-second typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&practiceDifficulty, "difficulty", defaultDifficulty, "sample difficulty (easy, medium, hard)")
	flags.Int64Var(&practiceSeed, "seed", 0, "random seed for sample selection (0 = time based)")
	flags.StringVar(&practiceSamples, "samples", "", "YAML sample pack overriding the built-in texts")
	flags.StringVar(&logLevel, "log-level", defaultLogLevel, "log level (trace, debug, info, warn, error, disabled)")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(newScriptCmd())
	rootCmd.AddCommand(newSamplesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadSettings merges the config file into flags the user did not set.
func loadSettings(cmd *cobra.Command) (model.Difficulty, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, fileCfg.Practice.Difficulty)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyStringConfig(cmd, "samples", &practiceSamples, fileCfg.Practice.Samples)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	if practiceSeed < 0 {
		return "", fmt.Errorf("--seed must be >= 0")
	}
	difficulty, err := model.ParseDifficulty(practiceDifficulty)
	if err != nil {
		return "", fmt.Errorf("--difficulty: %w", err)
	}
	return difficulty, nil
}

func loadBank() (*samples.Bank, error) {
	src := samples.NewSource(practiceSeed)
	path := practiceSamples
	if path == "" {
		if _, err := os.Stat(config.DefaultSamplesPath()); err != nil {
			return samples.Default(src), nil
		}
		path = config.DefaultSamplesPath()
	}
	pools, err := samples.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples from %s: %w", path, err)
	}
	return samples.New(pools, src)
}

// openLog returns a logger and a close func. Without a log file, fallback is used.
func openLog(fallback io.Writer) (zerolog.Logger, func(), error) {
	if logFile == "" {
		color := false
		if f, ok := fallback.(*os.File); ok {
			color = term.IsTerminal(int(f.Fd()))
		}
		return logger.Setup(logLevel, fallback, color), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closeFn := func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}
	return logger.Setup(logLevel, f, false), closeFn, nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	difficulty, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	bank, err := loadBank()
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so logs only go to a file.
	log, closeLog, err := openLog(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := tui.NewModel(bank, difficulty, log)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script [file]",
		Short: "Drive a session with text commands (start, type, tick, reset, select-difficulty, state)",
		Long: `Reads one command per line from a file or stdin and prints the session state after each.

Commands:
  start                      begin the 60 second countdown
  type <text>                replace the typed input with <text>
  tick [n]                   advance the countdown by n seconds (default 1)
  reset                      abandon the attempt and load a new sample
  select-difficulty <level>  easy, medium or hard (only while idle)
  state                      print the current state`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScriptCmd,
	}
}

func runScriptCmd(cmd *cobra.Command, args []string) error {
	difficulty, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	bank, err := loadBank()
	if err != nil {
		return err
	}
	log, closeLog, err := openLog(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	in := cmd.InOrStdin()
	prompt := ""
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close script: %v\n", cerr)
			}
		}()
		in = f
	} else if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		prompt = "> "
	}

	runner := script.NewRunner(cmd.OutOrStdout(), prompt)
	ctrl, err := session.New(bank,
		session.WithPresenter(runner),
		session.WithLogger(log),
		session.WithDifficulty(difficulty),
	)
	if err != nil {
		return err
	}
	runner.Bind(ctrl)
	return runner.Run(in)
}

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the configured sample texts",
		Args:  cobra.NoArgs,
		RunE:  runSamplesCmd,
	}
	cmd.Flags().StringVar(&samplesDifficulty, "only", "", "list a single difficulty")
	return cmd
}

func runSamplesCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadSettings(cmd); err != nil {
		return err
	}
	bank, err := loadBank()
	if err != nil {
		return err
	}
	difficulties := model.Difficulties
	if samplesDifficulty != "" {
		d, err := model.ParseDifficulty(samplesDifficulty)
		if err != nil {
			return fmt.Errorf("--only: %w", err)
		}
		difficulties = []model.Difficulty{d}
	}
	out := cmd.OutOrStdout()
	for _, d := range difficulties {
		if _, err := fmt.Fprintln(out, d); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for i, text := range bank.Pool(d) {
			if _, err := fmt.Fprintf(out, "  %d. %s\n", i+1, text); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
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

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# difficulty = %q       # easy, medium or hard
# seed = 0                # Random seed for sample selection (0 = time based)
# samples = %q            # YAML sample pack (keys: easy, medium, hard)

[log]
# level = %q            # trace, debug, info, warn, error, disabled
# file = ""               # Log file used by the interactive trainer
`,
		defaultDifficulty,
		config.DefaultSamplesPath(),
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
