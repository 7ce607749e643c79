package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the `validate` struct tags of cfg, including nested sections.
func Validate(cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	return nil
}
