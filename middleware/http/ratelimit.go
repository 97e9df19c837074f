package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kochabx/newswire/core/rate"
	"github.com/kochabx/newswire/errors"
	httpx "github.com/kochabx/newswire/transport/http"
)

// RateLimitConfig 限流中间件配置
type RateLimitConfig struct {
	Limiter   rate.Limiter // 限流器，nil 时中间件不生效
	SkipPaths []string     // 跳过限流的路径
}

// RateLimit 创建限流中间件，超出配额的请求返回 429
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	matcher := NewPathMatcher(cfg.SkipPaths)

	return func(c *gin.Context) {
		if cfg.Limiter == nil || shouldSkip(c, matcher, nil) {
			c.Next()
			return
		}

		if !cfg.Limiter.Allow() {
			httpx.GinJSONE(c, 429, errors.TooManyRequests("rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}
