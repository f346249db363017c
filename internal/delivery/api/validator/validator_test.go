package validator

import (
	"testing"

	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(&signupRequest{CompanyName: "Acme", Email: "ops@acme.test", Password: "s3cret"})
		assert.NoError(t, err)
	})

	t.Run("field details use json names", func(t *testing.T) {
		err := v.Validate(&signupRequest{Email: "not-an-email", Password: "123"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))

		fields, ok := appErr.Details().([]domainerrors.FieldError)
		require.True(t, ok)
		assert.ElementsMatch(t, []domainerrors.FieldError{
			{Field: "companyName", Message: "is required"},
			{Field: "email", Message: "must be a valid email address"},
			{Field: "password", Message: "must be at least 6 characters"},
		}, fields)
	})
}

type contactPatch struct {
	Email *string `json:"email" validate:"omitnil,optemail"`
}

func TestCustomValidator_OptionalEmail(t *testing.T) {
	v := New()

	empty := ""
	valid := "jane@example.com"
	invalid := "jane"

	assert.NoError(t, v.Validate(&contactPatch{}))
	assert.NoError(t, v.Validate(&contactPatch{Email: &empty}))
	assert.NoError(t, v.Validate(&contactPatch{Email: &valid}))
	assert.ErrorIs(t, v.Validate(&contactPatch{Email: &invalid}), domainerrors.ErrValidationFailed)
}
