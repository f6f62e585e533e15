package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/executor"
	"github.com/raphi011/precommit/internal/files"
	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/report"
)

// builtinHelp holds per-command help text for the built-in hook commands.
var builtinHelp = map[string]string{
	"trailing-whitespace":     "Strip trailing whitespace from each line",
	"end-of-file-fixer":       "Ensure files end with exactly one newline",
	"check-yaml":              "Check that YAML files parse",
	"pretty-format-json":      "Reformat JSON files with two-space indentation",
	"check-added-large-files": "Reject files above a size limit",
}

func builtinCommandNames() []string {
	return hook.BuiltinNames()
}

// newBuiltinCmd creates a subcommand running one built-in hook directly
// against the given paths, without a configuration document.
func newBuiltinCmd(name string) *cobra.Command {
	var maxBytes int64

	cmd := &cobra.Command{
		Use:     name + " <path>...",
		Short:   builtinHelp[name],
		GroupID: GroupRun,
		Args:    cobra.MinimumNArgs(1),
		Example: fmt.Sprintf(`  precommit %[1]s file.txt         # Single file
  precommit %[1]s src/             # Whole directory
  precommit %[1]s -n src/          # Dry-run: report only`, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			b, err := hook.Resolve(name)
			if err != nil {
				return err
			}
			d := hook.Descriptor{
				Name:      name,
				Kind:      hook.KindBuiltin,
				Enabled:   true,
				Transform: b.Transform,
			}
			if cmd.Flags().Changed("max-bytes") {
				d.Args = []string{strconv.FormatInt(maxBytes, 10)}
			}

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}

			// Direct invocation checks exactly what was passed: default
			// include patterns don't filter here.
			selected, err := files.Select(root, []string{"**"}, nil, args)
			if err != nil {
				return err
			}

			outcome := executor.Run(ctx, d, selected, executor.Options{DryRun: dryRun, Root: root})

			var r report.Report
			r.Append(outcome)
			color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			report.Render(os.Stdout, &r, color)

			if code := r.ExitCode(); code != report.ExitClean {
				return &exitCodeError{code: code}
			}
			return nil
		},
	}

	if name == "check-added-large-files" {
		cmd.Flags().Int64Var(&maxBytes, "max-bytes", 500000, "Size limit in bytes")
	}

	return cmd
}
