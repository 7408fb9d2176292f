// Package calculator implements the calculator program: a tagged
// binary instruction selects an operation, and the persisted record is
// overwritten with the new result and the operands that produced it.
package calculator

import (
	"context"
	"log/slog"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/domain/policy"
)

// Processor applies calculator instructions to a calculator account.
//
// Arithmetic wraps modulo 2^64 ("wrapping arithmetic" contract): sub
// with a < b underflows around zero instead of failing the invocation.
type Processor struct {
	guard *policy.Guard
	log   *slog.Logger
}

// NewProcessor creates a calculator Processor. A nil logger falls back
// to slog.Default().
func NewProcessor(log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{guard: policy.NewGuard(log), log: log}
}

// Process runs one calculator invocation: ownership guard, decode the
// stored record, decode the instruction, apply, re-encode. The previous
// stored result is discarded; a and b are always overwritten with the
// instruction's operands. Any failure aborts before mutation and leaves
// the account buffer untouched.
func (p *Processor) Process(ctx context.Context, programID entities.Identity, account *entities.Account, instructionBytes []byte) error {
	if err := p.guard.Check(programID, account.Owner); err != nil {
		return err
	}

	record, err := DecodeRecord(account.Data)
	if err != nil {
		return err
	}

	instr, err := UnpackInstruction(instructionBytes)
	if err != nil {
		return err
	}

	record = apply(record, instr)

	if err := record.Encode(account.Data); err != nil {
		return err
	}

	p.log.Info("calculated",
		"op", instr.Op, "a", instr.A, "b", instr.B, "result", record.Result)
	return nil
}

// apply is the pure state transition: result from the operation,
// operands recorded verbatim regardless of which operation ran.
func apply(record Record, instr Instruction) Record {
	switch instr.Op {
	case OpAdd:
		record.Result = instr.A + instr.B
	case OpSub:
		record.Result = instr.A - instr.B
	}
	record.A = instr.A
	record.B = instr.B
	return record
}
