package validator

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Validate 全局校验器实例
var (
	Validate Validator
	once     sync.Once
)

func init() {
	once.Do(func() {
		Validate = New()
	})
}

// validatorImpl 校验器实现
type validatorImpl struct {
	validator *validator.Validate
	uni       *ut.UniversalTranslator
	trans     ut.Translator
}

// New 创建新的校验器实例，默认使用英文翻译
func New(lang ...string) Validator {
	v := &validatorImpl{
		validator: validator.New(),
	}

	enLocale := en.New()
	zhLocale := zh.New()
	v.uni = ut.New(enLocale, enLocale, zhLocale)

	defaultLang := "en"
	if len(lang) > 0 && lang[0] != "" {
		defaultLang = lang[0]
	}

	trans, found := v.uni.GetTranslator(defaultLang)
	if !found {
		trans, _ = v.uni.GetTranslator("en")
	}
	v.trans = trans

	switch defaultLang {
	case "zh":
		_ = zh_translations.RegisterDefaultTranslations(v.validator, trans)
	default:
		_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
	}

	return v
}

// Struct 校验结构体
func (v *validatorImpl) Struct(s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}

	return v.translateError(v.validator.Struct(s))
}

// StructCtx 带上下文校验结构体
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}

	return v.translateError(v.validator.StructCtx(ctx, s))
}

// GetValidator 获取底层的 validator 实例
func (v *validatorImpl) GetValidator() *validator.Validate {
	return v.validator
}

// translateError 将校验错误翻译为可读消息
func (v *validatorImpl) translateError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(v.trans))
	}

	return errors.New(strings.Join(msgs, "; "))
}
