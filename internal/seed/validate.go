package seed

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
)

var validate = validator.New()

func validateSpec(spec ItemSpec) error {
	if err := validate.Struct(spec); err != nil {
		return formatValidationErrors(spec, err)
	}
	return nil
}

func formatValidationErrors(spec ItemSpec, err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid item spec %q", spec.UPC)).WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be below %s", fe.Param())
	}
	return "is invalid"
}
