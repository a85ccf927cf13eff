package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneRegex matches international phone numbers, e.g. +255712345678.
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// Validator validates structs using `validate` tags.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("phone", validatePhone)
	return &Validator{v: v}
}

// Validate validates a struct and returns the first rule violation.
func (val *Validator) Validate(obj interface{}) error {
	return val.v.Struct(obj)
}

// ValidPhone reports whether s is a well-formed phone number.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// ValidCoordinates reports whether lat/lon fall within WGS84 bounds.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func validatePhone(fl validator.FieldLevel) bool {
	return ValidPhone(fl.Field().String())
}
