package activitylog

import (
	"net/http"

	"go-offboarding/internal/shared/apperror"
	"go-offboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("activitylog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	companyID := c.GetString("company_id")
	exitRequestID := c.Param("id")

	resp, err := h.service.ListFor(c.Request.Context(), companyID, exitRequestID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("list activity failed",
			zap.String("exit_request_id", exitRequestID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
