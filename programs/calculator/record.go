package calculator

import (
	"encoding/binary"

	"github.com/slatehq/slate-sdk/domain/errors"
)

// RecordSize is the fixed byte length of an encoded Record.
const RecordSize = 24

// Record is the persisted state of a calculator account: the result of
// the most recent operation and the operands that produced it, stored
// as three little-endian u64 fields in the order result, a, b.
type Record struct {
	Result uint64 `json:"result"`
	A      uint64 `json:"a"`
	B      uint64 `json:"b"`
}

// DecodeRecord parses the fixed-width layout produced by Encode.
// Any other byte length is a malformed record.
func DecodeRecord(data []byte) (Record, error) {
	if len(data) != RecordSize {
		return Record{}, &errors.RecordError{Kind: "calculator", Want: RecordSize, Got: len(data)}
	}
	return Record{
		Result: binary.LittleEndian.Uint64(data[0:8]),
		A:      binary.LittleEndian.Uint64(data[8:16]),
		B:      binary.LittleEndian.Uint64(data[16:24]),
	}, nil
}

// Encode writes the record into the caller-owned buffer, overwriting
// exactly the bytes it occupies. The buffer is never resized.
func (r Record) Encode(buf []byte) error {
	if len(buf) != RecordSize {
		return &errors.RecordError{Kind: "calculator", Want: RecordSize, Got: len(buf)}
	}
	binary.LittleEndian.PutUint64(buf[0:8], r.Result)
	binary.LittleEndian.PutUint64(buf[8:16], r.A)
	binary.LittleEndian.PutUint64(buf[16:24], r.B)
	return nil
}
