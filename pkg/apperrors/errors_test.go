package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	appErr := StorageError(cause)

	assert.Equal(t, CodeDatabaseError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)
}

func TestAppError_AsAppError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", ErrTokenNotFound)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	t.Parallel()

	appErr := DeliveryError(errors.New("smtp password rejected"))

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	// Причина не должна утекать в ответ клиенту
	assert.NotContains(t, string(raw), "smtp password rejected")
	assert.Contains(t, string(raw), string(CodeExternalServiceError))
}

func TestDomainErrors_HTTPCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrTokenNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrWeakPassword.HTTPCode)
	assert.Equal(t, http.StatusBadGateway, DeliveryError(errors.New("x")).HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, AccountMissingError(errors.New("x")).HTTPCode)
}
