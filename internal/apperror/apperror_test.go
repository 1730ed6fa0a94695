package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation.Status())
	assert.Equal(t, http.StatusBadRequest, Conflict.Status())
	assert.Equal(t, http.StatusUnauthorized, Auth.Status())
	assert.Equal(t, http.StatusForbidden, InvalidToken.Status())
	assert.Equal(t, http.StatusForbidden, Authorization.Status())
	assert.Equal(t, http.StatusNotFound, NotFound.Status())
	assert.Equal(t, http.StatusInternalServerError, Internal.Status())
}

func TestKindOfWrapped(t *testing.T) {
	base := NewConflict("You have already applied for this job")
	wrapped := fmt.Errorf("apply: %w", base)

	assert.Equal(t, Conflict, KindOf(wrapped))
	assert.True(t, Is(wrapped, Conflict))
	assert.False(t, Is(wrapped, NotFound))
	assert.Equal(t, "You have already applied for this job", MessageOf(wrapped, "Server error"))

	plain := errors.New("connection refused")
	assert.Equal(t, Internal, KindOf(plain))
	assert.Equal(t, "Server error", MessageOf(plain, "Server error"))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(Conflict, "User already exists with this email", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "User already exists with this email: duplicate key", err.Error())
	assert.Equal(t, "conflict", err.Kind.String())
}
