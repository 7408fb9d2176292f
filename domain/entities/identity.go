package entities

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"
)

// IdentitySize is the byte length of every identity.
const IdentitySize = 32

// Identity identifies a program or an account authority. The canonical
// text form is base58 of the raw 32 bytes.
type Identity [IdentitySize]byte

// DeriveIdentity derives a deterministic identity from an arbitrary seed.
func DeriveIdentity(seed []byte) Identity {
	return Identity(blake2b.Sum256(seed))
}

// ParseIdentity decodes the base58 text form of an identity.
func ParseIdentity(s string) (Identity, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid identity %q: %w", s, err)
	}
	if len(raw) != IdentitySize {
		return Identity{}, fmt.Errorf("invalid identity size: %d", len(raw))
	}
	var id Identity
	copy(id[:], raw)
	return id, nil
}

// String returns the base58 text form.
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// Equal reports whether two identities are the same.
func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id[:], other[:])
}

// IsZero reports whether the identity is the all-zero value.
func (id Identity) IsZero() bool {
	return id == Identity{}
}
