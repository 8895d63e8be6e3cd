package middleware

import (
	"go-offboarding/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

// ExtractUserID runs after AuthMiddleware. It pins the authenticated user id
// under user_id_validated and in the request context.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			abort(c, ErrMissingAuthContext, nil)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			abort(c, ErrMissingAuthContext, nil)
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), userIDStr))
		c.Next()
	}
}
