package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the extra binding tags used by the
// request DTOs on gin's validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dateformat", validDateFormat)
}

// validDateFormat accepts dates in YYYY-MM-DD form only.
func validDateFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(dateLayout, value)
	return err == nil
}
