package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecureConfig 安全响应头中间件配置
type SecureConfig struct {
	ContentTypeNosniff      string // X-Content-Type-Options
	FrameOptions            string // X-Frame-Options
	XSSProtection           string // X-XSS-Protection
	ReferrerPolicy          string // Referrer-Policy
	ContentSecurityPolicy   string // Content-Security-Policy
	StrictTransportSecurity string // Strict-Transport-Security，仅对 TLS 请求下发
	CrossOriginOpenerPolicy string // Cross-Origin-Opener-Policy
}

// DefaultSecureConfig 返回默认安全响应头配置
func DefaultSecureConfig() SecureConfig {
	return SecureConfig{
		ContentTypeNosniff:      "nosniff",
		FrameOptions:            "SAMEORIGIN",
		XSSProtection:           "0",
		ReferrerPolicy:          "no-referrer",
		ContentSecurityPolicy:   "default-src 'self'",
		StrictTransportSecurity: "max-age=31536000; includeSubDomains",
		CrossOriginOpenerPolicy: "same-origin",
	}
}

// Secure 创建安全响应头中间件，为每个响应附加加固头
func Secure(cfgs ...SecureConfig) gin.HandlerFunc {
	cfg := DefaultSecureConfig()
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()

		if cfg.ContentTypeNosniff != "" {
			header.Set("X-Content-Type-Options", cfg.ContentTypeNosniff)
		}
		if cfg.FrameOptions != "" {
			header.Set("X-Frame-Options", cfg.FrameOptions)
		}
		if cfg.XSSProtection != "" {
			header.Set("X-XSS-Protection", cfg.XSSProtection)
		}
		if cfg.ReferrerPolicy != "" {
			header.Set("Referrer-Policy", cfg.ReferrerPolicy)
		}
		if cfg.ContentSecurityPolicy != "" {
			header.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
		}
		if cfg.CrossOriginOpenerPolicy != "" {
			header.Set("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
		}

		// HSTS 只对加密连接有意义
		if cfg.StrictTransportSecurity != "" && c.Request.TLS != nil {
			header.Set("Strict-Transport-Security", cfg.StrictTransportSecurity)
		}

		c.Next()
	}
}
