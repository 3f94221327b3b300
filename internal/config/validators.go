package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds the "exclusive=Other" validation: the tagged field and
// Other may not both be set. Errors name fields by their "label" tag.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive returns false when both string fields are non-empty.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := reflect.Indirect(fl.Parent()).FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || other.Kind() != reflect.String {
		return true
	}

	return field.String() == "" || other.String() == ""
}
