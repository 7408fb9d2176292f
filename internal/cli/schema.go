package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate-sdk/domain/entities"
)

// NewSchemaCommand creates the schema subcommand.
func NewSchemaCommand(opts *RootOptions) *cobra.Command {
	programs := map[string]entities.Identity{
		"greeting":   GreetingProgramID,
		"calculator": CalculatorProgramID,
	}

	return &cobra.Command{
		Use:       "schema <program>",
		Short:     "Print the JSON Schema of a program's record layout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"greeting", "calculator"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := programs[args[0]]
			if !ok {
				return fmt.Errorf("unknown program %q", args[0])
			}

			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			schema, ok := rt.Registry().Schema(id)
			if !ok {
				return fmt.Errorf("no schema registered for %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), schema)
			return nil
		},
	}
}
