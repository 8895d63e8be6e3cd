package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// detailer is implemented by typed domain errors that carry
// client-facing details (e.g. the full list of validation problems).
type detailer interface {
	ErrorDetails() any
}

// ToHTTP maps any error into the status/code/message triple used by handlers.
// Unknown errors become INTERNAL_ERROR without leaking the cause.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return HTTPError{
			Status:  http.StatusInternalServerError,
			Code:    ErrInternal.Code,
			Message: ErrInternal.Message,
		}
	}

	out := HTTPError{
		Status:  appErr.HTTPStatus,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}

	var d detailer
	if errors.As(err, &d) {
		out.Details = d.ErrorDetails()
	}
	return out
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}
