package clearance

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
		exits.GET("/:id/clearance", middleware.RBACAuthorize(rbacService, "clearance", "read"), handler.List)
		exits.PUT("/:id/clearance/:department", middleware.RBACAuthorize(rbacService, "clearance", "approve"), handler.Upsert)
	}
}
