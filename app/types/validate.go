package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and reports the first failing field in API terms.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	field := fe.Field()
	if idx := strings.IndexByte(field, '['); idx > 0 {
		field = field[:idx]
	}

	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String && strings.Contains(fe.Field(), "[") {
			return fmt.Errorf("%s must not contain empty values", field)
		}
		return fmt.Errorf("%s is required", field)
	case "min":
		return fmt.Errorf("%s must contain at least %s item(s)", field, fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
