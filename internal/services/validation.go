package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator reports violations under the json field names so they match
// what the client submitted.
func newValidator() *validator.Validate {

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// collectTagViolations converts validator tag failures into per-field
// messages. A nil error yields an empty, appendable map.
func collectTagViolations(err error) ValidationErrors {

	violations := ValidationErrors{}
	if err == nil {
		return violations
	}

	tagErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		violations.Add("_", err.Error())
		return violations
	}

	for _, fieldErr := range tagErrors {
		switch fieldErr.Tag() {
		case "required":
			violations.Add(fieldErr.Field(), "this field is required")
		case "max":
			violations.Add(fieldErr.Field(), fmt.Sprintf("must be at most %s characters", fieldErr.Param()))
		case "min":
			violations.Add(fieldErr.Field(), "must be non-negative")
		case "email":
			violations.Add(fieldErr.Field(), "must be a valid email address")
		default:
			violations.Add(fieldErr.Field(), "invalid value")
		}
	}
	return violations
}
