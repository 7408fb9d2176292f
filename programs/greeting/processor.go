// Package greeting implements the greeting counter program: each
// invocation increments a persisted u32 counter by exactly one.
package greeting

import (
	"context"
	"log/slog"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/domain/policy"
)

// Processor applies the greet instruction to a greeting account.
//
// The counter wraps modulo 2^32 ("wrapping counter" contract): after
// math.MaxUint32 greetings the next increment yields zero rather than
// failing the invocation.
type Processor struct {
	guard *policy.Guard
	log   *slog.Logger
}

// NewProcessor creates a greeting Processor. A nil logger falls back to
// slog.Default().
func NewProcessor(log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{guard: policy.NewGuard(log), log: log}
}

// Process runs one greeting invocation: ownership guard, decode,
// increment, re-encode. The greet instruction carries no payload, so
// instructionBytes is ignored. On any failure the account buffer is
// left untouched.
func (p *Processor) Process(ctx context.Context, programID entities.Identity, account *entities.Account, instructionBytes []byte) error {
	_ = instructionBytes

	if err := p.guard.Check(programID, account.Owner); err != nil {
		return err
	}

	record, err := DecodeRecord(account.Data)
	if err != nil {
		return err
	}
	record.Counter++

	if err := record.Encode(account.Data); err != nil {
		return err
	}

	p.log.Info("greeted", "count", record.Counter, "account", account.Address)
	return nil
}
