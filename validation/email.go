// Package validation holds input checks shared by the service layer and the notifier.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsEmail reports whether address is a syntactically valid email address.
// Surrounding whitespace makes an address invalid rather than being trimmed.
func IsEmail(address string) bool {
	if address == "" || strings.TrimSpace(address) != address {
		return false
	}
	return validate.Var(address, "required,email") == nil
}
