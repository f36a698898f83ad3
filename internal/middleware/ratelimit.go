package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gitlab.com/olena.kushnir/contacts-api/internal/logging"
	"gitlab.com/olena.kushnir/contacts-api/internal/metrics"
)

// RateLimit rejects clients that exceed limit requests per window, counted
// per client IP in a redis fixed window. The limiter fails open: when redis
// is unreachable the request is let through and the outage is logged, so a
// cache incident does not take the API down with it.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logging.FromGin(c).Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}
		if count > int64(limit) {
			metrics.RateLimitedCounter.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		c.Next()
	}
}
