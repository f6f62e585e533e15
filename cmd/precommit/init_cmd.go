package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/output"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init [path]",
		Short:   "Create a starter configuration",
		GroupID: GroupConfig,
		Args:    cobra.MaximumNArgs(1),
		Long: `Write a commented starter configuration document.

Defaults to .pre-commit.yaml in the current directory. The generated file
enables the common built-in hooks and documents the external hook keys.`,
		Example: `  precommit init                # Create .pre-commit.yaml
  precommit init custom.yaml    # Custom location
  precommit init -f             # Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Init(path, force); err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}
