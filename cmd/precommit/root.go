package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/output"
	"github.com/raphi011/precommit/internal/report"
)

var (
	// Global flags
	dryRun bool
	debug  bool
	quiet  bool

	// Machine-wide settings loaded before command dispatch
	settings config.Settings
)

// Command group IDs for organizing help output
const (
	GroupRun    = "run"
	GroupHooks  = "hooks"
	GroupConfig = "config"
)

// exitCodeError carries a specific process exit code through cobra's
// error return without printing anything: findings are already rendered.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "precommit",
	Short: "Fast, language-agnostic pre-commit hook runner",
	Long: `precommit runs formatting and lint hooks against your files before
they land in a commit.

Hooks are declared in .pre-commit.yaml at the repository root: built-in
fixers and checkers run in-process, external commands run via the shell
and are provisioned (installed) on first use.

Exit codes:
  0  All hooks passed
  1  Hooks found or fixed issues
  2  Engine error (bad configuration, I/O failure)`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug && quiet {
			return fmt.Errorf("--debug and --quiet are mutually exclusive")
		}
		// Flags are parsed at this point: bind the logger to their values.
		logger := log.New(os.Stderr, debug, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loaded, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	settings = loaded

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data). The logger is
	// attached in PersistentPreRunE, after flags have been parsed.
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		var exit *exitCodeError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(report.ExitToolError)
	}
}

// repoRoot resolves the repository root, falling back to the working
// directory outside a repository so the tool stays usable on plain trees.
func repoRoot(ctx context.Context) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	if git.CheckGit() != nil {
		return wd, nil
	}
	root, err := git.RepoRoot(ctx, wd)
	if err != nil {
		return wd, nil
	}
	return root, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what hooks would do without changing files")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show executed commands and diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRun, Title: "Run Commands:"},
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Run commands
	rootCmd.AddCommand(newRunCmd())
	for _, name := range builtinCommandNames() {
		rootCmd.AddCommand(newBuiltinCmd(name))
	}

	// Hook commands
	rootCmd.AddCommand(newListHooksCmd())
	rootCmd.AddCommand(newCreateHookCmd())
	rootCmd.AddCommand(newValidateHookCmd())

	// Config commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
