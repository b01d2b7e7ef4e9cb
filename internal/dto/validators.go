package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// slPhonePattern matches Sri Lankan phone numbers: local 0XXXXXXXXX or
	// international +94XXXXXXXXX.
	slPhonePattern = regexp.MustCompile(`^(?:\+94|0)\d{9}$`)

	// slNICPattern matches Sri Lankan national identity card numbers: the old
	// 9-digit form with a V/X suffix or the new 12-digit form.
	slNICPattern = regexp.MustCompile(`^(?:\d{9}[VvXx]|\d{12})$`)
)

// RegisterCustomValidators attaches the domain-specific format validators to
// gin's binding validator. Call once during startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("slphone", func(fl validator.FieldLevel) bool {
		return slPhonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("slnic", func(fl validator.FieldLevel) bool {
		return slNICPattern.MatchString(fl.Field().String())
	})
}
