package settlement

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

	calculate := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "settlement", "create"), handler.Calculate}
	if redisClient != nil {
		calculate = append([]gin.HandlerFunc{middleware.Idempotency(redisClient)}, calculate...)
	}

	exits := r.Group("/exits")
	exits.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		exits.POST("/:id/settlement", calculate...)
		exits.GET("/:id/settlement", middleware.RBACAuthorize(rbacService, "settlement", "read"), handler.GetLatest)
		exits.GET("/:id/settlements", middleware.RBACAuthorize(rbacService, "settlement", "read"), handler.GetHistory)
	}

	settlements := r.Group("/settlements")
	settlements.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		settlements.POST("/preview", middleware.RBACAuthorize(rbacService, "settlement", "read"), handler.Preview)
	}
}
