package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates the request DTO's validate tags and returns a single
// human-readable error for the first failing field.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	field := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return fmt.Errorf("field '%s' is required", field)
	case "email":
		return fmt.Errorf("invalid email format")
	case "min", "gte":
		return fmt.Errorf("field '%s' must be at least %s", field, first.Param())
	case "oneof":
		return fmt.Errorf("field '%s' must be one of: %s", field, first.Param())
	default:
		return fmt.Errorf("field '%s' failed on '%s'", field, first.Tag())
	}
}
