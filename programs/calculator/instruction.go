package calculator

import (
	"encoding/binary"
	"fmt"

	"github.com/slatehq/slate-sdk/domain/errors"
)

// InstructionSize is the exact wire length of an encoded instruction:
// one tag byte followed by two little-endian u64 operands.
const InstructionSize = 17

// Opcode is the instruction discriminant tag.
type Opcode byte

const (
	// OpAdd computes result = a + b.
	OpAdd Opcode = 0

	// OpSub computes result = a - b, wrapping modulo 2^64.
	OpSub Opcode = 1
)

// String returns the operation name used in diagnostic log lines.
func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	default:
		return fmt.Sprintf("opcode(%d)", byte(op))
	}
}

// Instruction is a decoded calculator command. It is transient: built
// from wire bytes, consumed by one invocation, never persisted.
type Instruction struct {
	Op Opcode
	A  uint64
	B  uint64
}

// UnpackInstruction parses wire bytes into an Instruction.
//
// Layout: byte 0 is the tag (0 add, 1 sub), bytes 1..9 operand a, bytes
// 9..17 operand b, both little-endian u64. Anything other than exactly
// 17 bytes, or an unrecognized tag, is an invalid instruction. Decoding
// is all-or-nothing and performs no validation of operand values.
func UnpackInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return Instruction{}, &errors.InstructionError{Reason: "empty instruction data"}
	}
	if len(data) != InstructionSize {
		return Instruction{}, &errors.InstructionError{
			Reason: fmt.Sprintf("want %d bytes, got %d", InstructionSize, len(data)),
		}
	}

	tag := data[0]
	switch Opcode(tag) {
	case OpAdd, OpSub:
	default:
		return Instruction{}, &errors.InstructionError{Tag: tag}
	}

	return Instruction{
		Op: Opcode(tag),
		A:  binary.LittleEndian.Uint64(data[1:9]),
		B:  binary.LittleEndian.Uint64(data[9:17]),
	}, nil
}

// Pack encodes the instruction into its 17-byte wire form.
func (in Instruction) Pack() []byte {
	buf := make([]byte, InstructionSize)
	buf[0] = byte(in.Op)
	binary.LittleEndian.PutUint64(buf[1:9], in.A)
	binary.LittleEndian.PutUint64(buf[9:17], in.B)
	return buf
}
