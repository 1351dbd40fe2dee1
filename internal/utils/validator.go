package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[@$!%*?&#^()\-_=+\[\]{};:'",.<>/\\|]`)
)

func InitValidator() {
	Validate = validator.New()

	// username: 3-50 chars, letters, digits, underscore, dash
	_ = Validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if len(v) < 3 || len(v) > 50 {
			return false
		}
		return usernameRegex.MatchString(v)
	})

	// password: 8-128 chars with lowercase, uppercase, digit and special
	_ = Validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if len(v) < 8 || len(v) > 128 {
			return false
		}
		return passwordLower.MatchString(v) &&
			passwordUpper.MatchString(v) &&
			passwordDigit.MatchString(v) &&
			passwordSpecial.MatchString(v)
	})
}
