package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kochabx/newswire/errors"
	httpx "github.com/kochabx/newswire/transport/http"
)

// subjectKey gin 上下文中存放令牌主体的键
const subjectKey = "auth_subject"

// AuthConfig JWT 鉴权中间件配置
type AuthConfig struct {
	// Secret HS256 签名密钥
	Secret string
	// SkipPaths 跳过鉴权的路径
	SkipPaths []string
}

// Auth 创建 JWT Bearer 鉴权中间件
// 校验 Authorization 头中的 HS256 令牌，主体写入上下文
func Auth(cfg AuthConfig) gin.HandlerFunc {
	matcher := NewPathMatcher(cfg.SkipPaths)
	secret := []byte(cfg.Secret)

	return func(c *gin.Context) {
		if shouldSkip(c, matcher, nil) {
			c.Next()
			return
		}

		raw := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, errors.Unauthorized("missing bearer token"))
			return
		}

		claims := jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Unauthorized("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			abortUnauthorized(c, errors.Unauthorized("invalid token").WithCause(err))
			return
		}

		c.Set(subjectKey, claims.Subject)
		c.Next()
	}
}

// GetSubject 从 gin 上下文中取出令牌主体
func GetSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

func abortUnauthorized(c *gin.Context, err *errors.Error) {
	httpx.GinJSONE(c, 401, err)
	c.Abort()
}
