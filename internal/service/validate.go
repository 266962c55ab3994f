package service

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// ValidationError reports the first rule a payload violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// passwordRules are the shared password policy, applied in declared order.
func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("password is required"),
		validation.Length(6, 0).Error("password must be at least 6 characters"),
		validation.Match(hasUppercase).Error("password must contain at least 1 uppercase letter"),
		validation.Match(hasDigit).Error("password must contain at least 1 number"),
	}
}

type fieldRules struct {
	name  string
	value string
	rules []validation.Rule
}

// checkFields validates fields one at a time in declared order and stops at
// the first violated rule, reporting only that violation. Aggregating all
// failures would change the messages clients see.
func checkFields(fields []fieldRules) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return &ValidationError{Field: f.name, Message: err.Error()}
		}
	}
	return nil
}

func validateRegister(in RegisterInput) error {
	return checkFields([]fieldRules{
		{"fullName", in.FullName, []validation.Rule{
			validation.Required.Error("fullName is required"),
		}},
		{"username", in.Username, []validation.Rule{
			validation.Required.Error("username is required"),
		}},
		{"email", in.Email, []validation.Rule{
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid email address"),
		}},
		{"password", in.Password, passwordRules()},
		{"confirmPassword", in.ConfirmPassword, []validation.Rule{
			validation.Required.Error("confirmPassword is required"),
			validation.In(in.Password).Error("password does not match"),
		}},
	})
}

func validateUpdatePassword(password, confirm string) error {
	return checkFields([]fieldRules{
		{"password", password, passwordRules()},
		{"confirmPassword", confirm, []validation.Rule{
			validation.Required.Error("confirmPassword is required"),
			validation.In(password).Error("password does not match"),
		}},
	})
}
