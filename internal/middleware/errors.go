package middleware

import (
	"net/http"

	"go-offboarding/internal/shared/apperror"
	"go-offboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token expired",
		http.StatusUnauthorized,
	)
	ErrMissingAuthContext = apperror.New(
		apperror.CodeUnauthorized,
		"missing auth context",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"you do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrRequestInProgress = apperror.New(
		"PROCESSING",
		"a request with this idempotency key is still being processed",
		http.StatusConflict,
	)
	ErrTooManyRequests = apperror.New(
		"TOO_MANY_REQUESTS",
		"too many requests",
		http.StatusTooManyRequests,
	)
)

func abort(c *gin.Context, err *apperror.AppError, details any) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, details)
	c.Abort()
}
