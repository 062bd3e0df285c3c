package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Event slugs are URL-safe business keys: lowercase words joined by
// single hyphens, e.g. "smith-johnson-wedding".
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterValidation("slug", validateSlug)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
