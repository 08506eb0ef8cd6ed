package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"

	"nest/shared/failure"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"datetime": "{field} must match the format {param}",
		"url":      "{field} must be a valid URL",
	}
)

func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			code := failure.InvalidField(field)
			if valErr.Tag() == "required" {
				code = failure.MissingField(field)
			}

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return code, errStr
			}

			return code, valErr.Error()
		}

		return failure.CodeBadRequest, valErrors.Error()
	}

	return failure.CodeBadRequest, err.Error()
}
