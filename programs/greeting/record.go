package greeting

import (
	"encoding/binary"

	"github.com/slatehq/slate-sdk/domain/errors"
)

// RecordSize is the fixed byte length of an encoded Record.
const RecordSize = 4

// Record is the persisted state of a greeting account: the number of
// greetings applied so far, stored as a little-endian u32.
type Record struct {
	Counter uint32 `json:"counter"`
}

// DecodeRecord parses the fixed-width layout produced by Encode.
// Any other byte length is a malformed record.
func DecodeRecord(data []byte) (Record, error) {
	if len(data) != RecordSize {
		return Record{}, &errors.RecordError{Kind: "greeting", Want: RecordSize, Got: len(data)}
	}
	return Record{Counter: binary.LittleEndian.Uint32(data)}, nil
}

// Encode writes the record into the caller-owned buffer, overwriting
// exactly the bytes it occupies. The buffer is never resized.
func (r Record) Encode(buf []byte) error {
	if len(buf) != RecordSize {
		return &errors.RecordError{Kind: "greeting", Want: RecordSize, Got: len(buf)}
	}
	binary.LittleEndian.PutUint32(buf, r.Counter)
	return nil
}
