package clearanceerrors

import (
	"net/http"

	"go-offboarding/internal/shared/apperror"
)

var (
	ErrExitRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"exit request not found",
		http.StatusNotFound,
	)
	ErrClearanceItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"clearance item not found",
		http.StatusNotFound,
	)
	ErrChecklistLocked = apperror.New(
		apperror.CodeInvalidState,
		"clearance items can only change before clearance is completed",
		http.StatusConflict,
	)
	ErrInvalidDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"department is required and must be at most 100 characters",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of pending, approved, rejected",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
)
