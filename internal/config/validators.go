package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerKeySource adds the "keysource" rule, which allows the key to be given either
// directly or through a file but not both, and makes errors name fields by their flag.
func registerKeySource(v *validator.Validator) error {
	if err := v.RegisterValidationAndTranslation(
		"keysource",
		singleKeySource,
		"{0} cannot be combined with --key-file",
	); err != nil {
		return fmt.Errorf("registering keysource validation: %w", err)
	}

	v.Validator().RegisterTagNameFunc(flagName)

	return nil
}

// flagName returns the flag a field is set by, falling back to the field name.
func flagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("label"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}

// singleKeySource fails when both the key and the key file are set.
func singleKeySource(fl validator.FieldLevel) bool {
	keyFile := fl.Parent().FieldByName("KeyFile")

	return fl.Field().String() == "" || !keyFile.IsValid() || keyFile.String() == ""
}
