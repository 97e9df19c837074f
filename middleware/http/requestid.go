package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 使用的头名称
const RequestIDHeader = "X-Request-Id"

// requestIDKey gin 上下文中存放请求 ID 的键
const requestIDKey = "request_id"

// RequestID 创建请求 ID 中间件
// 透传客户端携带的请求 ID，没有时生成新的 UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID 从 gin 上下文中取出请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
