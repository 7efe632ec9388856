package forms

import (
	"fmt"
	"html"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the submitted field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs every rule on the tagged struct and accumulates all
// failures in declaration order. It never stops at the first failing field.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s must not be empty", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must not exceed %s characters", field, param)
		case "datetime":
			message = "Invalid date"
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errors = append(errors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return errors
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// sanitize is what every stored string value goes through: surrounding
// whitespace dropped, markup escaped.
func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// parseDate converts an ISO-8601 date string to a date value. An empty or
// unparseable string yields nil; validation has already flagged the latter.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
