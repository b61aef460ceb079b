package apperror

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate shares the `binding` tags used by gin so request DTOs are checked
// with the same rules before they leave the process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(jsonTagName)
	return v
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks v against its binding tags and maps the first failure.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return MapValidationError(err)
	}
	return nil
}
