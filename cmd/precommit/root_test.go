package main

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/log"
)

func TestBuiltinCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, builtin := range hook.BuiltinNames() {
		if !names[builtin] {
			t.Errorf("no subcommand for built-in hook %q", builtin)
		}
	}

	for _, required := range []string{
		"run", "list-hooks", "init", "install",
		"create-hook", "validate-hook", "completion",
	} {
		if !names[required] {
			t.Errorf("missing subcommand %q", required)
		}
	}
}

func TestBuiltinHelpCoversAllHooks(t *testing.T) {
	for _, name := range hook.BuiltinNames() {
		if builtinHelp[name] == "" {
			t.Errorf("no help text for built-in hook %q", name)
		}
	}
}

// The logger must pick up --debug and --quiet after flag parsing, which
// means it is bound in PersistentPreRunE rather than in Execute.
func TestLoggerBoundToParsedFlags(t *testing.T) {
	defer func() { debug, quiet = false, false }()

	preRun := func(t *testing.T) *log.Logger {
		t.Helper()
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		if err := rootCmd.PersistentPreRunE(cmd, nil); err != nil {
			t.Fatalf("PersistentPreRunE: %v", err)
		}
		return log.FromContext(cmd.Context())
	}

	debug, quiet = true, false
	if !preRun(t).Debugging() {
		t.Error("--debug did not enable debug logging")
	}

	debug, quiet = false, true
	if preRun(t).Writer() != io.Discard {
		t.Error("--quiet did not silence the logger")
	}

	debug, quiet = false, false
	l := preRun(t)
	if l.Debugging() {
		t.Error("debug logging enabled without --debug")
	}
	if l.Writer() == io.Discard {
		t.Error("logger silenced without --quiet")
	}
}

func TestDebugQuietConflict(t *testing.T) {
	defer func() { debug, quiet = false, false }()

	debug, quiet = true, true
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := rootCmd.PersistentPreRunE(cmd, nil); err == nil {
		t.Error("expected an error for --debug together with --quiet")
	}
}

func TestRunAliases(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "run" {
			for _, alias := range c.Aliases {
				if alias == "run-config" {
					return
				}
			}
		}
	}
	t.Error("run command missing run-config alias")
}
