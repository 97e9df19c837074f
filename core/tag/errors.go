package tag

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetMustBePointer target 必须是指针
	ErrTargetMustBePointer = errors.New("tag: target must be a pointer")

	// ErrTargetIsNil target 不能为 nil
	ErrTargetIsNil = errors.New("tag: target is nil")

	// ErrUnsupportedType 不支持的字段类型
	ErrUnsupportedType = errors.New("tag: unsupported type")

	// ErrMaxDepthExceeded 嵌套层级过深
	ErrMaxDepthExceeded = errors.New("tag: max nesting depth exceeded")
)

// newFieldError 构造带字段上下文的错误
func newFieldError(field, value string, err error) error {
	return fmt.Errorf("tag: field %s with default %q: %w", field, value, err)
}
