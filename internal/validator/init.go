package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// GetValidator returns the shared validator instance used by the
// service layer for required-field checks on request payloads.
func GetValidator() *validator.Validate {
	return validate
}
