package main

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/report"
	"github.com/raphi011/precommit/internal/runner"
)

func newRunCmd() *cobra.Command {
	var (
		jobs      int
		filePaths []string
	)

	cmd := &cobra.Command{
		Use:     "run [config]",
		Short:   "Run all configured hooks",
		Aliases: []string{"run-config"},
		GroupID: GroupRun,
		Args:    cobra.MaximumNArgs(1),
		Long: `Run every enabled hook from the configuration against the given files.

Without --files, the whole repository is checked. Hooks run concurrently,
but the report always lists results in configured order. All hooks run to
completion so one failure never hides another's findings.`,
		Example: `  precommit run                       # All hooks, whole repository
  precommit run --files src/main.go   # Only the given file
  precommit run custom.yaml           # Explicit config document
  precommit run -n                    # Dry-run: report without fixing
  precommit run --jobs 1              # Run hooks sequentially`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}

			configPath := config.DefaultPath
			if len(args) == 1 {
				configPath = args[0]
			} else if _, err := os.Stat(configPath); err != nil {
				// Also look in the repository root when invoked from a
				// subdirectory.
				configPath = filepath.Join(root, config.DefaultPath)
			}

			descs, err := config.Load(configPath)
			if err != nil {
				return err
			}
			l.Debug("loaded config", "path", configPath, "hooks", len(descs))

			inputs := filePaths
			if len(inputs) == 0 {
				inputs = []string{root}
			}

			if jobs == 0 {
				jobs = settings.Jobs
			}

			r := runner.RunAll(ctx, descs, inputs, runner.Options{
				DryRun:   dryRun,
				Jobs:     jobs,
				Root:     root,
				CacheDir: settings.CacheDir,
				Timeout:  settings.Timeout(),
			})

			color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			report.Render(os.Stdout, &r, color)

			if code := r.ExitCode(); code != report.ExitClean {
				return &exitCodeError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Max hooks running concurrently (0 = auto)")
	cmd.Flags().StringSliceVarP(&filePaths, "files", "f", nil, "Restrict the run to these files or directories")

	return cmd
}
