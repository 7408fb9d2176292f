// Package policy implements the ownership guard: the single
// authorization check that runs before any record mutation.
package policy

import (
	"log/slog"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/domain/errors"
)

// Guard validates that the invoking program controls the account it is
// about to mutate. One check per invocation, no retries.
type Guard struct {
	log *slog.Logger
}

// NewGuard creates a Guard. A nil logger falls back to slog.Default().
func NewGuard(log *slog.Logger) *Guard {
	if log == nil {
		log = slog.Default()
	}
	return &Guard{log: log}
}

// Check returns nil iff actual matches expected. On mismatch it emits
// one diagnostic log line and returns an *errors.AuthorityError; the
// caller must abort the invocation without mutating any state.
func (g *Guard) Check(expected, actual entities.Identity) error {
	if actual.Equal(expected) {
		return nil
	}
	g.log.Warn("account does not have the correct owner",
		"expected", expected, "actual", actual)
	return &errors.AuthorityError{Expected: expected, Actual: actual}
}
