package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate-sdk/programs/greeting"
)

// NewGreetCommand creates the greet subcommand.
func NewGreetCommand(opts *RootOptions) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Run the greeting program against the greeting account",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			for i := 0; i < times; i++ {
				if err := rt.Invoke(cmd.Context(), GreetingProgramID, GreetingAccount, nil); err != nil {
					return err
				}
			}

			account, err := rt.Account(GreetingAccount)
			if err != nil {
				return err
			}
			record, err := greeting.DecodeRecord(account.Data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "greeted %d time(s)\n", record.Counter)
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of greetings to apply")

	return cmd
}
