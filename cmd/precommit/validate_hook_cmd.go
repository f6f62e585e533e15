package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/builtin"
	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/output"
)

func newValidateHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "validate-hook <name>",
		Short:     "Check a built-in hook against its contract",
		GroupID:   GroupHooks,
		ValidArgs: hook.BuiltinNames(),
		Args:      cobra.ExactArgs(1),
		Long: `Run a built-in hook through its behavioral contract: empty input,
dry-run byte-identity, sample-input detection, and fixer idempotence.

Useful after changing a transform, or as a template for validating
external hooks by hand.`,
		Example: `  precommit validate-hook trailing-whitespace
  precommit validate-hook check-yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			b, err := hook.Resolve(name)
			if err != nil {
				return err
			}
			if err := builtin.Validate(ctx, name, b.Transform); err != nil {
				return err
			}
			output.FromContext(ctx).Printf("%s: ok\n", name)
			return nil
		},
	}

	return cmd
}
