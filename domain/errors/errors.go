// Package errors provides domain-specific error types for the SDK.
// All error types support inspection via errors.As() and errors.Is().
// Every error here is terminal for the invocation that produced it:
// no component retries, and the account buffer is left untouched.
package errors

import (
	"fmt"

	"github.com/slatehq/slate-sdk/domain/entities"
)

// AuthorityError reports an ownership check failure: the invoking
// program does not control the account it tried to mutate.
type AuthorityError struct {
	Expected entities.Identity // The program that performed the invocation.
	Actual   entities.Identity // The account's recorded owner.
}

func (e *AuthorityError) Error() string {
	return fmt.Sprintf("incorrect authority: account owned by %s, invoked by %s", e.Actual, e.Expected)
}

// RecordError reports stored bytes that cannot be parsed into the
// expected fixed-width record layout.
type RecordError struct {
	Kind string // Record kind (e.g. "greeting", "calculator").
	Want int    // Expected byte length of the layout.
	Got  int    // Actual byte length observed.
}

func (e *RecordError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("malformed %s record: %d bytes", e.Kind, e.Got)
	}
	return fmt.Sprintf("malformed %s record: want %d bytes, got %d", e.Kind, e.Want, e.Got)
}

// InstructionError reports instruction bytes that are missing, too
// short, too long, or carry an unrecognized tag.
type InstructionError struct {
	Reason string
	Tag    byte // Set when the failure is an unrecognized tag.
}

func (e *InstructionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid instruction: unrecognized tag %d", e.Tag)
	}
	return fmt.Sprintf("invalid instruction: %s", e.Reason)
}

// NotFoundError reports a runtime lookup miss for a program or account.
type NotFoundError struct {
	Kind string // "program" or "account".
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
