package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts binding errors into an INVALID_INPUT AppError.
// Every failing field is listed in Details so clients can fix them in one pass.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusBadRequest,
		)
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		field := formatFieldName(e.Field())
		switch e.Tag() {
		case "required":
			messages = append(messages, RequiredField(field).Message)
		default:
			messages = append(messages, InvalidField(field).Message)
		}
	}

	first := errs[0]
	var head *AppError
	if first.Tag() == "required" {
		head = RequiredField(formatFieldName(first.Field()))
	} else {
		head = InvalidField(formatFieldName(first.Field()))
	}
	return head.WithDetails(messages)
}
