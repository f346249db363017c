package errors

import (
	"net/http"
	"testing"

	"shiptrack/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := NewValidationError(FieldError{Field: "name", Message: "name is required"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrCustomerNotFound))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, []FieldError{{Field: "name", Message: "name is required"}}, err.Details())
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrShipmentQuotaExceeded.WrapMessage("create shipment")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "SHIPMENT_QUOTA_EXCEEDED", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrShipmentQuotaExceeded))
}

func TestQuotaAndAuthorizationCodesDiffer(t *testing.T) {
	assert.NotEqual(t, ErrUnauthenticated.ErrorCode(), ErrCustomerQuotaExceeded.ErrorCode())
	assert.NotEqual(t, ErrUnauthenticated.HTTPCode(), ErrCustomerQuotaExceeded.HTTPCode())
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	cause := errors.New("pq: relation \"shipments\" does not exist")
	err := NewDatabaseExecuteError(cause, "failed to create shipment")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.NotContains(t, err.Message(), "relation")
	assert.True(t, errors.Is(err, cause))
}
