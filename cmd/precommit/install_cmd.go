package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/output"
)

func newInstallCmd() *cobra.Command {
	var (
		binPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install the git pre-commit hook",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Install a pre-commit shim into the repository's hooks directory.

The shim execs 'precommit run' on every commit. An existing hook written
by another tool is never overwritten without --force.`,
		Example: `  precommit install                       # Use the binary from PATH
  precommit install --path ~/bin/precommit  # Pin a specific binary
  precommit install -f                    # Replace a foreign hook`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := git.CheckGit(); err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			bin := binPath
			if bin == "" {
				bin, err = os.Executable()
				if err != nil {
					bin = "precommit"
				}
			}

			path, err := git.InstallHook(ctx, wd, bin, force)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Printf("Installed pre-commit hook at %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&binPath, "path", "", "Binary the hook should invoke (default: this executable)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing hook not written by precommit")

	return cmd
}
