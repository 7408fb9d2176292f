package calculator

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/slatehq/slate-sdk/domain/errors"
)

func packRaw(tag byte, a, b uint64) []byte {
	buf := make([]byte, InstructionSize)
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:9], a)
	binary.LittleEndian.PutUint64(buf[9:17], b)
	return buf
}

func TestUnpackInstruction(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Instruction
	}{
		{name: "add", data: packRaw(0, 5, 7), want: Instruction{Op: OpAdd, A: 5, B: 7}},
		{name: "sub", data: packRaw(1, 10, 3), want: Instruction{Op: OpSub, A: 10, B: 3}},
		{name: "max operands", data: packRaw(0, 1<<64-1, 1<<64-1), want: Instruction{Op: OpAdd, A: 1<<64 - 1, B: 1<<64 - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr, err := UnpackInstruction(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, instr)
		})
	}
}

// Every byte value other than the two known tags must be rejected,
// even when the rest of the input is well formed.
func TestUnpackInstruction_TagCoverage(t *testing.T) {
	for tag := 0; tag <= 255; tag++ {
		instr, err := UnpackInstruction(packRaw(byte(tag), 1, 1))

		switch byte(tag) {
		case byte(OpAdd):
			require.NoError(t, err)
			assert.Equal(t, OpAdd, instr.Op)
		case byte(OpSub):
			require.NoError(t, err)
			assert.Equal(t, OpSub, instr.Op)
		default:
			var instrErr *sdkerrors.InstructionError
			require.True(t, errors.As(err, &instrErr), "tag %d", tag)
			assert.Equal(t, byte(tag), instrErr.Tag)
		}
	}
}

func TestUnpackInstruction_Truncated(t *testing.T) {
	full := packRaw(0, 5, 7)
	for size := 0; size < InstructionSize; size++ {
		_, err := UnpackInstruction(full[:size])

		var instrErr *sdkerrors.InstructionError
		require.True(t, errors.As(err, &instrErr), "size %d", size)
	}
}

func TestUnpackInstruction_TrailingGarbage(t *testing.T) {
	data := append(packRaw(0, 5, 7), 0x00)

	_, err := UnpackInstruction(data)

	var instrErr *sdkerrors.InstructionError
	require.True(t, errors.As(err, &instrErr))
}

func TestInstruction_PackRoundTrip(t *testing.T) {
	instr := Instruction{Op: OpSub, A: 18446744073709551615, B: 42}

	decoded, err := UnpackInstruction(instr.Pack())
	require.NoError(t, err)
	assert.Equal(t, instr, decoded)
}

func TestInstruction_WireFormatGolden(t *testing.T) {
	g := goldie.New(t)

	g.Assert(t, "add_instruction", Instruction{Op: OpAdd, A: 5, B: 7}.Pack())
	g.Assert(t, "sub_instruction", Instruction{Op: OpSub, A: 10, B: 3}.Pack())
}

func TestOpcode_String(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "sub", OpSub.String())
	assert.Equal(t, "opcode(9)", Opcode(9).String())
}
