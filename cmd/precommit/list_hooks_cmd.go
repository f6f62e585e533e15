package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/output"
)

func newListHooksCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list-hooks",
		Short:   "List configured hooks",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `List the hooks from the configuration document, in run order.

Use --all to also show built-in hooks not referenced by the configuration.`,
		Example: `  precommit list-hooks          # Configured hooks
  precommit list-hooks --all    # Include unused built-ins`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			var descs []hook.Descriptor
			if _, err := os.Stat(config.DefaultPath); err == nil {
				descs, err = config.Load(config.DefaultPath)
				if err != nil {
					return err
				}
			}

			configured := make(map[string]bool, len(descs))
			for _, d := range descs {
				configured[d.Name] = true
				state := "enabled"
				if !d.Enabled {
					state = "disabled"
				}
				p.Printf("%-28s %-8s %s\n", d.Name, d.Kind, state)
			}

			if all {
				for _, name := range hook.BuiltinNames() {
					if !configured[name] {
						p.Printf("%-28s %-8s not configured\n", name, hook.KindBuiltin)
					}
				}
			}

			if len(descs) == 0 && !all {
				p.Println("No hooks configured. Run 'precommit init' to create a config.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also list built-in hooks not in the config")

	return cmd
}
