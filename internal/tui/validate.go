package tui

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the client request structs' validate tags before a form
// submits; anything beyond required/email lives on the backend.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage turns a validator error into a one-line form message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email")
		case "oneof":
			parts = append(parts, field+" must be one of: "+fe.Param())
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, ", ")
}
