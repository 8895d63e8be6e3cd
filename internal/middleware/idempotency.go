package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-offboarding/internal/shared/contextutil"
	"go-offboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency replays the cached response of a POST that already succeeded
// with the same Idempotency-Key, and rejects a duplicate that arrives while
// the first is still running. Handlers store the response under
// idempotency_cache_key and release idempotency_lock_key when done.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L()).Named("middleware.idempotency")

		caller := c.GetString("employee_id")
		if caller == "" {
			caller = c.GetString("user_id_validated")
		}
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), caller, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil && json.Valid(val) {
			log.Debug("idempotent replay", zap.String("key", cacheKey))
			response.Success(c, http.StatusOK, json.RawMessage(val), nil)
			c.Abort()
			return
		}
		if err != nil && err != redis.Nil {
			log.Warn("idempotency cache unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			abort(c, ErrRequestInProgress, nil)
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
