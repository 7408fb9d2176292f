package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate-sdk/programs/calculator"
)

// NewCalcCommand creates the calc subcommand with add/sub operations.
func NewCalcCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run the calculator program against the calculator account",
	}

	cmd.AddCommand(newCalcOpCommand(opts, "add", calculator.OpAdd))
	cmd.AddCommand(newCalcOpCommand(opts, "sub", calculator.OpSub))

	return cmd
}

func newCalcOpCommand(opts *RootOptions, name string, op calculator.Opcode) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: fmt.Sprintf("Apply %s to two unsigned 64-bit operands", name),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid operand a: %w", err)
			}
			b, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid operand b: %w", err)
			}

			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			instr := calculator.Instruction{Op: op, A: a, B: b}
			if err := rt.Invoke(cmd.Context(), CalculatorProgramID, CalculatorAccount, instr.Pack()); err != nil {
				return err
			}

			account, err := rt.Account(CalculatorAccount)
			if err != nil {
				return err
			}
			record, err := calculator.DecodeRecord(account.Data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %d = %d\n", name, record.A, record.B, record.Result)
			return nil
		},
	}
}
