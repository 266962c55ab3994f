package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName:        "Azril Aprillio",
		Username:        "azril",
		Email:           "azril@mail.com",
		Password:        "Azril123",
		ConfirmPassword: "Azril123",
	}
}

func TestValidateRegister(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		require.NoError(t, validateRegister(validRegisterInput()))
	})

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		message string
	}{
		{
			"missing fullName",
			func(in *RegisterInput) { in.FullName = "" },
			"fullName is required",
		},
		{
			"missing username",
			func(in *RegisterInput) { in.Username = "" },
			"username is required",
		},
		{
			"missing email",
			func(in *RegisterInput) { in.Email = "" },
			"email is required",
		},
		{
			"malformed email",
			func(in *RegisterInput) { in.Email = "not-an-email" },
			"email must be a valid email address",
		},
		{
			"missing password",
			func(in *RegisterInput) { in.Password = ""; in.ConfirmPassword = "" },
			"password is required",
		},
		{
			"short password",
			func(in *RegisterInput) { in.Password = "Az1"; in.ConfirmPassword = "Az1" },
			"password must be at least 6 characters",
		},
		{
			"no uppercase letter",
			func(in *RegisterInput) { in.Password = "abc123"; in.ConfirmPassword = "abc123" },
			"password must contain at least 1 uppercase letter",
		},
		{
			"no digit",
			func(in *RegisterInput) { in.Password = "Abcdef"; in.ConfirmPassword = "Abcdef" },
			"password must contain at least 1 number",
		},
		{
			"missing confirmPassword",
			func(in *RegisterInput) { in.ConfirmPassword = "" },
			"confirmPassword is required",
		},
		{
			"confirmPassword mismatch",
			func(in *RegisterInput) { in.ConfirmPassword = "Azril124" },
			"password does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mutate(&in)

			err := validateRegister(in)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.message, ve.Message)
		})
	}
}

func TestValidateRegister_FailFastOrder(t *testing.T) {
	// Everything is wrong; only the first declared rule is reported.
	err := validateRegister(RegisterInput{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "fullName is required", ve.Message)

	// fullName fixed; the next field in order is reported.
	err = validateRegister(RegisterInput{FullName: "Someone"})
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "username is required", ve.Message)
}

func TestValidateUpdatePassword(t *testing.T) {
	require.NoError(t, validateUpdatePassword("Baru123", "Baru123"))

	var ve *ValidationError

	err := validateUpdatePassword("abc123", "abc123")
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "password must contain at least 1 uppercase letter", ve.Message)

	err = validateUpdatePassword("Baru123", "Lain123")
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "password does not match", ve.Message)
}
