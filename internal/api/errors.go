package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/studykit/practicelog/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Persistence errors
	case errors.Is(err, store.ErrLoadFailed),
		errors.Is(err, store.ErrSaveFailed),
		errors.Is(err, store.ErrResetFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrLoadFailed):
		return "Failed to read stored data"

	case errors.Is(err, store.ErrSaveFailed):
		return "Failed to persist data"

	case errors.Is(err, store.ErrResetFailed):
		return "Failed to reset stored data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'RecordResultRequest.Tool' Error:Field validation for 'Tool' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	case "gte":
		return "too small"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
