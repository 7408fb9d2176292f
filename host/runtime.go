package host

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/domain/errors"
	"github.com/slatehq/slate-sdk/domain/ports"
	"github.com/slatehq/slate-sdk/host/registry"
)

// Runtime owns the account table and dispatches invocations to
// registered programs. It never inspects record bytes itself; the
// layout of an account's data is entirely the owning program's concern.
type Runtime struct {
	mu       sync.Mutex
	accounts map[entities.Identity]*entities.Account
	registry ports.ProgramRegistry
	log      *slog.Logger
}

// NewRuntime creates a runtime with the given options.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		accounts: make(map[entities.Identity]*entities.Account),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.registry == nil {
		rt.registry = registry.New()
	}
	if rt.log == nil {
		rt.log = slog.Default()
	}
	return rt
}

// Register binds a program to its identity. The record model is used to
// publish a JSON Schema for the program's persisted layout.
func (rt *Runtime) Register(id entities.Identity, program ports.Program, recordModel any) error {
	return rt.registry.Register(id, program, recordModel)
}

// Registry exposes the program registry for tooling.
func (rt *Runtime) Registry() ports.ProgramRegistry {
	return rt.registry
}

// CreateAccount allocates an account under the given owner with the
// given initial buffer. The buffer's size is fixed for the account's
// lifetime.
func (rt *Runtime) CreateAccount(address, owner entities.Identity, data []byte) (*entities.Account, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if _, exists := rt.accounts[address]; exists {
		return nil, fmt.Errorf("account %s already exists", address)
	}
	account := &entities.Account{Address: address, Owner: owner, Data: data}
	rt.accounts[address] = account
	return account, nil
}

// Account resolves an account by address.
func (rt *Runtime) Account(address entities.Identity) (*entities.Account, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	account, ok := rt.accounts[address]
	if !ok {
		return nil, &errors.NotFoundError{Kind: "account", ID: address.String()}
	}
	return account, nil
}

// Invoke runs one synchronous invocation: it resolves the program and
// the account, hands the program exclusive access to the account's
// buffer, and returns the program's verdict. Invocations are serialized
// so no two of them can observe the same buffer concurrently. On any
// failure the account's bytes are unchanged.
func (rt *Runtime) Invoke(ctx context.Context, programID, address entities.Identity, instructionBytes []byte) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	program, ok := rt.registry.Lookup(programID)
	if !ok {
		return &errors.NotFoundError{Kind: "program", ID: programID.String()}
	}
	account, ok := rt.accounts[address]
	if !ok {
		return &errors.NotFoundError{Kind: "account", ID: address.String()}
	}

	log := rt.log.With(
		"invocation", uuid.NewString(),
		"program", programID,
		"account", address,
	)
	log.Debug("invoking program", "instruction_bytes", len(instructionBytes))

	if err := program.Process(ctx, programID, account, instructionBytes); err != nil {
		log.Debug("invocation failed", "error", err)
		return fmt.Errorf("invoke %s: %w", programID, err)
	}
	return nil
}
