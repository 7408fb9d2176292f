package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/domain/errors"
	"github.com/slatehq/slate-sdk/internal/abi"
)

// Status codes a guest program's process export may return. They mirror
// the domain error taxonomy so the host can surface typed errors.
const (
	statusOK                 uint32 = 0
	statusIncorrectAuthority uint32 = 1
	statusMalformedRecord    uint32 = 2
	statusInvalidInstruction uint32 = 3
)

// stateHeaderSize is the fixed prefix of the state region handed to the
// guest: program identity followed by account owner.
const stateHeaderSize = 2 * entities.IdentitySize

// WASMProgram is a ports.Program backed by a compiled guest module.
//
// The guest must export `allocate(size) -> ptr` and
// `process(statePtrLen, instrPtrLen) -> status`. The state region is
// programID(32) || owner(32) || record bytes; the guest mutates the
// record bytes in place and the host copies them back on success.
type WASMProgram struct {
	runtime  wazero.Runtime
	module   api.Module
	allocate api.Function
	process  api.Function
}

// LoadWASMProgram instantiates a guest module from its compiled bytes.
func LoadWASMProgram(ctx context.Context, wasmBytes []byte) (*WASMProgram, error) {
	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	mod, err := rt.Instantiate(ctx, wasmBytes)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	allocate := mod.ExportedFunction("allocate")
	process := mod.ExportedFunction("process")
	if allocate == nil || process == nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("guest does not export 'allocate' and 'process'")
	}

	return &WASMProgram{runtime: rt, module: mod, allocate: allocate, process: process}, nil
}

// Close releases the guest module and its runtime.
func (p *WASMProgram) Close(ctx context.Context) error {
	return p.runtime.Close(ctx)
}

// Process implements ports.Program by delegating the invocation to the
// guest module.
func (p *WASMProgram) Process(ctx context.Context, programID entities.Identity, account *entities.Account, instructionBytes []byte) error {
	state := make([]byte, stateHeaderSize+len(account.Data))
	copy(state[:entities.IdentitySize], programID[:])
	copy(state[entities.IdentitySize:stateHeaderSize], account.Owner[:])
	copy(state[stateHeaderSize:], account.Data)

	statePacked, err := p.writeGuest(ctx, state)
	if err != nil {
		return err
	}
	instrPacked, err := p.writeGuest(ctx, instructionBytes)
	if err != nil {
		return err
	}

	results, err := p.process.Call(ctx, statePacked, instrPacked)
	if err != nil {
		return fmt.Errorf("guest process call failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("guest process returned no results")
	}

	switch status := uint32(results[0]); status {
	case statusOK:
	case statusIncorrectAuthority:
		return &errors.AuthorityError{Expected: programID, Actual: account.Owner}
	case statusMalformedRecord:
		return &errors.RecordError{Kind: "guest", Got: len(account.Data)}
	case statusInvalidInstruction:
		return &errors.InstructionError{Reason: "rejected by guest program"}
	default:
		return fmt.Errorf("guest process returned unknown status %d", status)
	}

	// The guest mutated the record region in place; copy it back.
	ptr, _ := abi.UnpackPtrLen(statePacked)
	data, ok := p.module.Memory().Read(ptr+stateHeaderSize, uint32(len(account.Data)))
	if !ok {
		return fmt.Errorf("failed to read record back from guest memory")
	}
	copy(account.Data, data)
	return nil
}

// writeGuest allocates guest memory, copies data into it, and returns
// the packed ptr/len word. Empty data packs to zero.
func (p *WASMProgram) writeGuest(ctx context.Context, data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	results, err := p.allocate.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to allocate in guest: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("allocate returned no results")
	}
	ptr := uint32(results[0])
	if !p.module.Memory().Write(ptr, data) {
		return 0, fmt.Errorf("failed to write to guest memory")
	}
	return abi.PackPtrLen(ptr, uint32(len(data))), nil
}
