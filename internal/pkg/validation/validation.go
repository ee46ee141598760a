package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rsharma/collegium/internal/app/models/dto"
)

// Flatten converts a binding error into the per-field validation tree the API
// returns with 400 responses. Non-validator errors (malformed JSON, type
// mismatches) collapse into a single detail.
func Flatten(err error) []dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.ErrorDetail{
			*dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request body is malformed"),
		}
	}

	details := make([]dto.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, *dto.NewErrorDetail(
			dto.ErrorCodeValidationFailed,
			messageFor(fe),
		).WithField(fieldName(fe)))
	}
	return details
}

// fieldName lowercases the leading struct field letter to match the JSON keys
// clients submitted.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", fieldName(fe), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fieldName(fe), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fieldName(fe))
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}
