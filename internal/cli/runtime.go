package cli

import (
	"fmt"

	"github.com/slatehq/slate-sdk/config"
	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/host"
	"github.com/slatehq/slate-sdk/programs/calculator"
	"github.com/slatehq/slate-sdk/programs/greeting"
)

// Well-known identities for the demo runtime, derived from fixed seeds
// so repeated runs address the same programs and accounts.
var (
	GreetingProgramID   = entities.DeriveIdentity([]byte("slate/program/greeting"))
	CalculatorProgramID = entities.DeriveIdentity([]byte("slate/program/calculator"))
	GreetingAccount     = entities.DeriveIdentity([]byte("slate/account/greeting"))
	CalculatorAccount   = entities.DeriveIdentity([]byte("slate/account/calculator"))
)

// newRuntime builds an in-memory runtime with both programs registered
// and accounts seeded either from the genesis file or from built-ins.
func newRuntime(opts *RootOptions) (*host.Runtime, error) {
	rt := host.NewRuntime()

	if err := rt.Register(GreetingProgramID, greeting.NewProcessor(nil), greeting.Record{}); err != nil {
		return nil, fmt.Errorf("failed to register greeting program: %w", err)
	}
	if err := rt.Register(CalculatorProgramID, calculator.NewProcessor(nil), calculator.Record{}); err != nil {
		return nil, fmt.Errorf("failed to register calculator program: %w", err)
	}

	if opts.Genesis != "" {
		g, err := config.Load(opts.Genesis)
		if err != nil {
			return nil, err
		}
		if err := g.Apply(rt); err != nil {
			return nil, err
		}
		return rt, nil
	}

	if _, err := rt.CreateAccount(GreetingAccount, GreetingProgramID, make([]byte, greeting.RecordSize)); err != nil {
		return nil, err
	}
	if _, err := rt.CreateAccount(CalculatorAccount, CalculatorProgramID, make([]byte, calculator.RecordSize)); err != nil {
		return nil, err
	}
	return rt, nil
}
