package exitrequest

import (
	"go-offboarding/internal/middleware"
	"go-offboarding/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	exits := r.Group("/exits")
	exits.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		exits.GET("", middleware.RBACAuthorize(rbacService, "exit", "read"), handler.GetAll)
		exits.GET("/:id", middleware.RBACAuthorize(rbacService, "exit", "read"), handler.GetByID)
		if redisClient != nil {
			exits.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "exit", "create"),
				handler.Initiate,
			)
		} else {
			exits.POST("", middleware.RBACAuthorize(rbacService, "exit", "create"), handler.Initiate)
		}
		exits.POST("/:id/transitions", middleware.RBACAuthorize(rbacService, "exit", "approve"), handler.Transition)
		exits.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "exit", "cancel"), handler.Cancel)
		exits.DELETE("/:id", middleware.RBACAuthorize(rbacService, "exit", "delete"), handler.Delete)
	}
}
