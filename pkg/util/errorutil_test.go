package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "name"})

	mapped := ToDomainError(original)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "name", mapped.Details["field"])
}

func TestToDomainErrorUnwrapsWrappedDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading profile: %w", NewForbidden("nope"))

	mapped := ToDomainError(wrapped)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainErrorMapsMissingRowsToNotFound(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("select user: %w", pgx.ErrNoRows))
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// the original error is kept for logs, not for the response body
	assert.ErrorContains(t, mapped.Err, "boom")
}

func TestToDomainErrorNil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
	require.NoError(t, MapError(nil))
}

func TestNotFoundNamesResource(t *testing.T) {
	mapped := ToDomainError(NewNotFound("profile", nil))
	assert.Equal(t, "profile not found", mapped.Message)
}
