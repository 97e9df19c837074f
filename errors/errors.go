package errors

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
)

// UnknownCode 未能归类的错误默认使用的状态码
const UnknownCode = 500

// Error 结构化错误：状态码 + 消息 + 元数据 + 错误链
type Error struct {
	Code     int               `json:"code,omitempty"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`

	cause error
}

// Error 返回可读的错误描述，包含元数据与底层原因
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "code=%d, message=%s", e.Code, e.Message)

	if len(e.Metadata) > 0 {
		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(", metadata={")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%s", k, e.Metadata[k])
		}
		b.WriteByte('}')
	}

	if e.cause != nil {
		fmt.Fprintf(&b, ", cause=%v", e.cause)
	}

	return b.String()
}

// Unwrap 返回错误链中的底层错误
func (e *Error) Unwrap() error {
	return e.cause
}

// Is 判断 err 是否为相同状态码和消息的 *Error
func (e *Error) Is(err error) bool {
	var ne *Error
	if errors.As(err, &ne) {
		return e.Code == ne.Code && e.Message == ne.Message
	}
	return false
}

// WithMetadata 附加元数据，返回新实例以保持不可变性
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	ne := e.clone()
	if ne.Metadata == nil {
		ne.Metadata = make(map[string]string, len(m))
	}
	maps.Copy(ne.Metadata, m)
	return ne
}

// WithCause 附加底层错误，返回新实例以保持不可变性
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	ne := e.clone()
	ne.cause = cause
	return ne
}

// GetCode 返回状态码
func (e *Error) GetCode() int {
	return e.Code
}

// GetMessage 返回错误消息
func (e *Error) GetMessage() string {
	return e.Message
}

// GetCause 返回底层错误
func (e *Error) GetCause() error {
	return e.cause
}

func (e *Error) clone() *Error {
	var metadata map[string]string
	if len(e.Metadata) > 0 {
		metadata = make(map[string]string, len(e.Metadata))
		maps.Copy(metadata, e.Metadata)
	}

	return &Error{
		Code:     e.Code,
		Message:  e.Message,
		Metadata: metadata,
		cause:    e.cause,
	}
}

// New 创建带状态码和格式化消息的错误
func New(code int, format string, args ...any) *Error {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Code:    code,
		Message: message,
	}
}

// FromError 将任意 error 转换为 *Error
// 已经是 *Error 时原样返回，否则归类为 UnknownCode
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	if ne, ok := err.(*Error); ok {
		return ne
	}

	return New(UnknownCode, "%v", err)
}

// Wrap 用新的状态码和消息包装错误，保留错误链
// err 为 nil 时返回 nil
func Wrap(err error, code int, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return New(code, format, args...).WithCause(err)
}

// Code 返回错误的状态码，nil 返回 200，非 *Error 返回 UnknownCode
func Code(err error) int {
	if err == nil {
		return 200
	}
	return FromError(err).Code
}
