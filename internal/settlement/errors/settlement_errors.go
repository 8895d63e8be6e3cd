package settlementerrors

import (
	"net/http"

	"go-offboarding/internal/shared/apperror"
)

var (
	ErrValidation = apperror.New(
		apperror.CodeInvalidInput,
		"settlement input is incomplete",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrExitRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"exit request not found",
		http.StatusNotFound,
	)
	ErrSettlementNotFound = apperror.New(
		apperror.CodeNotFound,
		"settlement calculation not found",
		http.StatusNotFound,
	)
	ErrNotEligible = apperror.New(
		apperror.CodeInvalidState,
		"settlement can only be calculated once clearance is completed",
		http.StatusConflict,
	)
)
