package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeyUserID   contextKey = "userID"
	ContextKeyUsername contextKey = "username"
)

// CurrentUserID returns the authenticated user's id from the request
// context, or 0 when the request is unauthenticated.
func CurrentUserID(r *http.Request) uint {
	userID, ok := r.Context().Value(ContextKeyUserID).(uint)
	if !ok {
		return 0
	}
	return userID
}

func CurrentUsername(r *http.Request) string {
	username, _ := r.Context().Value(ContextKeyUsername).(string)
	return username
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s must be a number.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

// JoinValidationErrors flattens the field error map into one display message.
func JoinValidationErrors(errs validator.ValidationErrors) string {
	formatted := FormatValidationErrors(errs)
	parts := make([]string, 0, len(formatted))
	for _, msg := range formatted {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " ")
}
