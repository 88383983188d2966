package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{6,}$`)

func init() {
	// Member logins accept either an email address or a phone number in the
	// same identifier field.
	validate.RegisterValidation("email_or_phone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if phoneRe.MatchString(value) {
			return true
		}
		return validate.Var(value, "email") == nil
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
