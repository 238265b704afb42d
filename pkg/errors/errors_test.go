package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := map[ErrorCode]int{
		CodeBadRequest:         http.StatusBadRequest,
		CodeValidationFailed:   http.StatusBadRequest,
		CodeUnauthorized:       http.StatusUnauthorized,
		CodeNotFound:           http.StatusNotFound,
		CodeServiceUnavailable: http.StatusServiceUnavailable,
		CodeInternal:           http.StatusInternalServerError,
		CodePersistenceError:   http.StatusInternalServerError,
	}
	for code, want := range cases {
		err := NewAppError(code, "message", "")
		assert.Equal(t, want, err.StatusCode(), string(code))
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewAppError(CodeBadRequest, "bad input", "field x")
	assert.Equal(t, "BAD_REQUEST: bad input (field x)", err.Error())

	err = NewAppError(CodeBadRequest, "bad input", "")
	assert.Equal(t, "BAD_REQUEST: bad input", err.Error())
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewPersistenceError("write state file", cause)

	assert.Equal(t, CodePersistenceError, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrapPassesThroughAppErrors(t *testing.T) {
	original := NewNotFoundError("recipe")
	wrapped := Wrap(original, "ignored")
	assert.Same(t, original, wrapped)

	plain := fmt.Errorf("boom")
	wrapped = Wrap(plain, "something failed")
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.ErrorIs(t, wrapped, plain)

	assert.Nil(t, Wrap(nil, "no error"))
}

func TestIsMatchesCode(t *testing.T) {
	err := NewUnauthorizedError("")
	assert.True(t, Is(err, CodeUnauthorized))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(fmt.Errorf("plain"), CodeUnauthorized))
}

func TestWithMetadata(t *testing.T) {
	err := NewInternalError("").WithMetadata("key", "store.preferences")
	assert.Equal(t, "store.preferences", err.Metadata["key"])

	resp := ToErrorResponse(err, "req-1")
	assert.Equal(t, CodeInternal, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.NotEmpty(t, resp.Error.Timestamp)
}
