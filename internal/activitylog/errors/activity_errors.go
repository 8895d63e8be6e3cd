package activityerrors

import (
	"net/http"

	"go-offboarding/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidExitRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid exit request id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrActionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"activity action is required",
		http.StatusBadRequest,
	)
	ErrExitRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"exit request not found",
		http.StatusNotFound,
	)
	ErrCorruptDetails = apperror.New(
		apperror.CodeInternalError,
		"activity details could not be decoded",
		http.StatusInternalServerError,
	)
)
