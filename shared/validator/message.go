package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":   "{field} is required",
	"gte":        "{field} must be greater than or equal to {param}",
	"lte":        "{field} must be less than or equal to {param}",
	"oneof":      "{field} must be one of {param}",
	"max":        "{field} must be at most {param}",
	"min":        "{field} must be at least {param}",
	"day":        "{field} must be a date formatted as YYYY-MM-DD",
	"gtfield":    "{field} must be after {param}",
	"startswith": "{field} must start with {param}",
}

// message renders every field violation, in struct order, joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, fieldErr := range valErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			parts = append(parts, fieldErr.Field()+" is invalid ("+fieldErr.Tag()+")")

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template))
	}

	return strings.Join(parts, "; ")
}
