package validator

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Validator 结构体校验接口
type Validator interface {
	// Struct 校验结构体
	Struct(s any) error

	// StructCtx 带上下文校验结构体
	StructCtx(ctx context.Context, s any) error

	// GetValidator 获取底层的 validator 实例
	GetValidator() *validator.Validate
}
