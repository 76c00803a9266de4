package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "fulfilment/internal/errors"
)

func TestMapToHTTPStatus_TypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewValidationError("Location is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperror.NewNotFoundError("Warehouse unit not found"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("Business unit code already exists"), http.StatusConflict, "CONFLICT"},
		{"internal", apperror.NewInternalError("falhou", errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped", fmt.Errorf("contexto: %w", apperror.NewNotFoundError("x")), http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestMapToHTTPStatus_UntypedError(t *testing.T) {
	status, category, message := apperror.MapToHTTPStatus(errors.New("driver exploded"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
	assert.NotContains(t, message, "driver exploded")
}

func TestPropagate_KeepsAppErrorAndWrapsOthers(t *testing.T) {
	notFound := apperror.NewNotFoundError("Warehouse unit not found")
	assert.Same(t, notFound, apperror.Propagate("falha", notFound))

	raw := errors.New("connection reset")
	wrapped := apperror.Propagate("Falha ao consultar armazéns", raw)
	assert.IsType(t, &apperror.InternalError{}, wrapped)
	assert.ErrorIs(t, wrapped, raw)
	assert.Contains(t, wrapped.Error(), "Falha ao consultar armazéns")

	assert.NoError(t, apperror.Propagate("nada", nil))
}

func TestClassificationHelpers(t *testing.T) {
	assert.True(t, apperror.IsValidation(apperror.NewValidationError("x")))
	assert.True(t, apperror.IsNotFound(apperror.NewNotFoundError("x")))
	assert.True(t, apperror.IsConflict(apperror.NewConflictErrorWithCause("x", errors.New("23505"))))
	assert.False(t, apperror.IsConflict(apperror.NewValidationError("x")))
}
