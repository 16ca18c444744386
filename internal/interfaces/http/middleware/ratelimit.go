// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/infrastructure/persistence/redis"
	"artisan-market-api/pkg/logger"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond int
	Burst             int
}

// RateLimit 基于 Redis 滑动窗口的限流中间件
// 已认证请求按用户限流，匿名请求按客户端 IP 限流
func RateLimit(limiter *redis.RateLimiter, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		limit := cfg.RequestsPerSecond + cfg.Burst
		if limit <= 0 {
			c.Next()
			return
		}

		key := redis.BuildIPRateLimitKey(c.ClientIP())
		if userID := UserID(c); userID != "" {
			key = redis.BuildUserRateLimitKey(userID, c.FullPath())
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, time.Second)
		if err != nil {
			// 限流器故障时放行，不把 Redis 故障放大为全站 429
			logger.Warn(c.Request.Context(), "限流检查失败", "error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":     429,
				"message":  "too many requests",
				"trace_id": c.GetString("trace_id"),
			})
			return
		}

		c.Next()
	}
}
