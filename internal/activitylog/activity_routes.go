package activitylog

import (
	"go-offboarding/internal/middleware"
	"go-offboarding/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	exits := r.Group("/exits")
	exits.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		exits.GET("/:id/activity", middleware.RBACAuthorize(rbacService, "exit", "read"), handler.List)
	}
}
