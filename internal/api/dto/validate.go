package dto

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

var validate = validator.New()

// Validate checks a request payload against its struct tags and converts
// failures into a validation error with per-field details.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	details := map[string]any{}
	if ok := asValidationErrors(err, &fieldErrs); ok {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return apperrors.NewValidationError("invalid payload", details)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
