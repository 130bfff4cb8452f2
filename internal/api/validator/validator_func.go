package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	phoneRegex = `^\+?[0-9 ]{11,21}$`
)

const (
	PhoneTag = "phone"
)

var phonePattern = regexp.MustCompile(phoneRegex)

var valid = map[string]func(fl validator.FieldLevel) bool{
	PhoneTag: ValidatePhone,
}

func ValidatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
