package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kochabx/newswire/errors"
)

const (
	// 默认响应消息
	defaultSuccessMsg = "success"
	defaultErrorMsg   = "operation failed"

	successCode = http.StatusOK
)

// Response 表示标准化的 API 响应结构
// 使用泛型 T 来支持任意类型的数据字段
type Response[T any] struct {
	Code int    `json:"code"`           // 业务状态码
	Msg  string `json:"msg,omitempty"`  // 响应消息
	Data T      `json:"data,omitempty"` // 响应数据
}

// GinJSON 写入成功的 JSON 响应
// HTTP 状态码固定为 200，业务码为 200，消息为 "success"
func GinJSON(c *gin.Context, data any) {
	if c == nil {
		return
	}

	c.JSON(http.StatusOK, &Response[any]{
		Code: successCode,
		Msg:  defaultSuccessMsg,
		Data: data,
	})
}

// GinJSONE 写入失败的 JSON 响应
// HTTP 状态码固定为 200，业务码和消息根据参数决定
//
// data 参数支持多种类型：
//   - error: 自动提取错误消息，优先从 errors.Error 中提取
//   - string: 直接作为消息使用
//   - nil: 使用默认错误消息
//   - 其他类型: 作为 data 字段返回
func GinJSONE(c *gin.Context, code int, data any) {
	if c == nil {
		return
	}

	var msg string
	var respData any

	switch v := data.(type) {
	case error:
		msg = extractErrorMessage(v)
	case string:
		msg = v
	case nil:
		msg = defaultErrorMsg
	default:
		respData = v
	}

	c.JSON(http.StatusOK, &Response[any]{
		Code: code,
		Msg:  msg,
		Data: respData,
	})
}

// GinError 根据 errors.Error 的状态码写入失败响应
func GinError(c *gin.Context, err error) {
	if c == nil {
		return
	}

	e := errors.FromError(err)
	if e == nil {
		GinJSON(c, nil)
		return
	}

	GinJSONE(c, e.Code, e.Message)
}

// extractErrorMessage 从 error 中提取消息
func extractErrorMessage(err error) string {
	if err == nil {
		return defaultErrorMsg
	}

	if e := errors.FromError(err); e != nil {
		return e.Message
	}

	return err.Error()
}

// Success 创建成功响应对象（辅助函数）
func Success[T any](data T) *Response[T] {
	return &Response[T]{
		Code: successCode,
		Msg:  defaultSuccessMsg,
		Data: data,
	}
}

// Failure 创建失败响应对象（辅助函数）
func Failure(code int, msg string) *Response[any] {
	return &Response[any]{
		Code: code,
		Msg:  msg,
	}
}
