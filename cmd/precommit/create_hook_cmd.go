package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/output"
	"github.com/raphi011/precommit/internal/scaffold"
)

func newCreateHookCmd() *cobra.Command {
	var (
		language    string
		description string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:     "create-hook <name>",
		Short:   "Generate a starter external hook",
		GroupID: GroupHooks,
		Args:    cobra.ExactArgs(1),
		Long: `Generate a starter script for a new external hook and print the
configuration snippet wiring it up.

The generated hook receives file paths as arguments and follows the exit
code convention: 0 clean, 1 findings, anything else internal failure.`,
		Example: `  precommit create-hook my-check --language shell
  precommit create-hook my-check --language python --description "Check imports"
  precommit create-hook my-check --language go --output-dir tools/hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := scaffold.ParseLanguage(language)
			if err != nil {
				return err
			}

			path, snippet, err := scaffold.Create(outputDir, args[0], lang, description)
			if err != nil {
				return err
			}

			p := output.FromContext(cmd.Context())
			p.Printf("Created %s\n\n", path)
			p.Println("Add this to your .pre-commit.yaml:")
			p.Print(snippet)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "shell", "Hook language: go, python, or shell")
	cmd.Flags().StringVarP(&description, "description", "d", "", "One-line description embedded in the template")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".precommit-tools", "Directory for the generated script")
	cmd.RegisterFlagCompletionFunc("language", cobra.FixedCompletions([]string{"go", "python", "shell"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
