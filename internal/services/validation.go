package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Messages shown to the user, keyed by Submission field name
var submissionMessages = map[string]string{
	"Email":   "Please enter a valid email address.",
	"Subject": "Subject is required.",
	"Body":    "Feedback message is required.",
}

// validationMessages converts validator errors to user-facing messages.
// The validator reports at most one error per field, in struct order.
func validationMessages(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{"Invalid submission."}
	}

	for _, fieldError := range validationErrors {
		messages = append(messages, getErrorMessage(fieldError))
	}

	return messages
}

func getErrorMessage(fe validator.FieldError) string {
	if msg, ok := submissionMessages[fe.Field()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Please enter a valid email address."
	default:
		return fe.Field() + " is invalid."
	}
}
