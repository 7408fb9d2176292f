package entities

// Account is the handle to a persisted record: a fixed-size byte buffer
// plus the identity of the program allowed to mutate it.
//
// The buffer is allocated externally and never resized. During an
// invocation the processing program holds exclusive access to Data and
// must not retain a reference after returning; the runtime enforces the
// exclusivity.
type Account struct {
	// Address identifies the account itself.
	Address Identity

	// Owner is the program permitted to mutate Data.
	Owner Identity

	// Data holds the account's persisted record bytes.
	Data []byte
}

// NewAccount allocates an account with a zeroed buffer of the given size.
func NewAccount(address, owner Identity, size int) *Account {
	return &Account{
		Address: address,
		Owner:   owner,
		Data:    make([]byte, size),
	}
}
