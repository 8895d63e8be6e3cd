package exiterrors

import (
	"fmt"
	"net/http"

	"go-offboarding/internal/shared/apperror"
)

var (
	ErrExitRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"exit request not found",
		http.StatusNotFound,
	)
	ErrDuplicateActiveRequest = apperror.New(
		apperror.CodeConflict,
		"employee already has an active exit request",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"status transition is not allowed",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"unknown exit request status",
		http.StatusBadRequest,
	)
	ErrInvalidExitType = apperror.New(
		apperror.CodeInvalidInput,
		"exit_type must be one of resignation, termination, absconded, contract_end",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidResignationDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid resignation_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidLastWorkingDay = apperror.New(
		apperror.CodeInvalidInput,
		"invalid last_working_day format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"last_working_day cannot be before resignation_date",
		http.StatusBadRequest,
	)
)

// InvalidTransitionError explains why a requested status change was refused.
// It matches ErrInvalidTransition under errors.Is.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s: %s", e.From, e.To, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func (e *InvalidTransitionError) ErrorDetails() any {
	return map[string]string{
		"from":   e.From,
		"to":     e.To,
		"reason": e.Reason,
	}
}
