package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/kochabx/newswire/log"
)

// Option 客户端配置选项
type Option func(*clientOptions)

// clientOptions 客户端内部选项
type clientOptions struct {
	logger *log.Logger

	// 连接超时
	connectTimeout time.Duration

	// 慢查询阈值（0 表示禁用）
	slowQueryThresh time.Duration

	// 自定义 GORM 配置
	gormConfig *gorm.Config
}

// defaultOptions 返回默认选项
func defaultOptions() *clientOptions {
	return &clientOptions{
		connectTimeout: 10 * time.Second,
	}
}

// WithLogger 设置日志记录器
func WithLogger(l *log.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithConnectTimeout 设置连接超时时间
func WithConnectTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.connectTimeout = d
		}
	}
}

// WithSlowQuery 启用慢查询日志（threshold 为 0 表示禁用）
func WithSlowQuery(threshold time.Duration) Option {
	return func(o *clientOptions) {
		o.slowQueryThresh = threshold
	}
}

// WithGormConfig 设置自定义 GORM 配置
func WithGormConfig(cfg *gorm.Config) Option {
	return func(o *clientOptions) {
		o.gormConfig = cfg
	}
}
