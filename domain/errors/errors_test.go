package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate-sdk/domain/entities"
)

func TestAuthorityError(t *testing.T) {
	expected := entities.DeriveIdentity([]byte("program"))
	actual := entities.DeriveIdentity([]byte("other-program"))

	var err error = &AuthorityError{Expected: expected, Actual: actual}

	assert.Equal(t,
		fmt.Sprintf("incorrect authority: account owned by %s, invoked by %s", actual, expected),
		err.Error())

	var authErr *AuthorityError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, expected, authErr.Expected)
	assert.Equal(t, actual, authErr.Actual)
}

func TestRecordError(t *testing.T) {
	var err error = &RecordError{Kind: "calculator", Want: 24, Got: 7}

	assert.Equal(t, "malformed calculator record: want 24 bytes, got 7", err.Error())

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 24, recErr.Want)
	assert.Equal(t, 7, recErr.Got)
}

func TestInstructionError_Reason(t *testing.T) {
	var err error = &InstructionError{Reason: "empty instruction data"}
	assert.Equal(t, "invalid instruction: empty instruction data", err.Error())
}

func TestInstructionError_Tag(t *testing.T) {
	var err error = &InstructionError{Tag: 9}
	assert.Equal(t, "invalid instruction: unrecognized tag 9", err.Error())
}

func TestNotFoundError(t *testing.T) {
	id := entities.DeriveIdentity([]byte("missing"))
	var err error = &NotFoundError{Kind: "account", ID: id.String()}

	assert.Equal(t, fmt.Sprintf("account %s not found", id), err.Error())
}
