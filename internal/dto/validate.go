package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/Devraj326/Vedss/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct validation and converts failures into the common
// validation error shape.
func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+" failed "+fe.Tag())
	}
	return appErrors.Clone(appErrors.ErrValidation, strings.Join(messages, "; "))
}
