package ports

import (
	"context"

	"github.com/slatehq/slate-sdk/domain/entities"
)

// Program is a state-mutation handler invoked by the host runtime.
//
// Process receives the identity the program was registered under, an
// exclusively borrowed account handle, and the raw instruction bytes of
// the invocation. It either mutates the account's record in place and
// returns nil, or returns a terminal error having left the buffer
// byte-for-byte untouched. Implementations must not retain the account
// or its buffer after returning.
type Program interface {
	Process(ctx context.Context, programID entities.Identity, account *entities.Account, instructionBytes []byte) error
}

// ProgramRegistry resolves program identities to their handlers and
// exposes the JSON Schema of each program's record model.
type ProgramRegistry interface {
	Register(id entities.Identity, program Program, recordModel any) error
	Lookup(id entities.Identity) (Program, bool)
	Schema(id entities.Identity) (string, bool)
	List() []entities.Identity
}
