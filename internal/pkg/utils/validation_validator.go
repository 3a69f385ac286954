package utils

import (
	"pacientes-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	dniRegex     = regexp.MustCompile(constvars.RegexDNI)
	isoDateRegex = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("dni", validateDNI)
	validate.RegisterValidation("iso_date", validateISODate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDNI(fl validator.FieldLevel) bool {
	return dniRegex.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return isoDateRegex.MatchString(fl.Field().String())
}
