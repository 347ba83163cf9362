package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/placement-portal/api/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates obj. A failed "required" rule becomes a MissingField error
// carrying missingMessage; any other failure becomes a validation error.
func Struct(obj any, missingMessage string) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("invalid request")
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperrors.NewMissingField(missingMessage)
		}
	}
	return apperrors.NewValidationError(formatValidationError(fieldErrs[0]))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
