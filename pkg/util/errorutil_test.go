package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThroughWrapped(t *testing.T) {
	original := NewUnauthorizedCode(CodeTokenExpired, "Token expired")
	wrapped := fmt.Errorf("middleware: %w", original)

	got := ToDomainError(wrapped)

	assert.Same(t, original, got)
}

func TestToDomainError_HidesUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset by peer")

	got := ToDomainError(cause)

	require.NotNil(t, got)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, "internal server error", got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestErrorBody(t *testing.T) {
	cause := errors.New("ACCESS_TOKEN_SECRET is not set")
	de := ToDomainError(NewConfigError("Server misconfiguration", cause))

	body := ErrorBody(de)

	items, ok := body["errors"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, http.StatusInternalServerError, items[0]["statusCode"])
	assert.Equal(t, CodeConfig, items[0]["code"])
	assert.Equal(t, "Server misconfiguration", items[0]["publicMessage"])
	assert.NotContains(t, items[0], "details")
	for _, v := range items[0] {
		assert.NotEqual(t, cause.Error(), v)
	}
}

func TestErrorBody_WithDetails(t *testing.T) {
	de := ToDomainError(NewValidationError("Please enter a valid email", map[string]any{"field": "email"}))

	body := ErrorBody(de)

	items := body["errors"].([]map[string]any)
	assert.Equal(t, map[string]any{"field": "email"}, items[0]["details"])
}
