package redis

import (
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/kochabx/newswire/log"
)

// Option 客户端配置选项
type Option func(*clientOptions)

// clientOptions 客户端内部选项
type clientOptions struct {
	password string
	username string
	db       int
	poolSize int

	hooks []redis.Hook

	enableMetrics bool
	enableTracing bool
	tracingOpts   []redisotel.TracingOption
	metricsOpts   []redisotel.MetricsOption

	logger *log.Logger
}

// WithPassword 设置密码
func WithPassword(password string) Option {
	return func(o *clientOptions) {
		o.password = password
	}
}

// WithUsername 设置用户名 (Redis 6.0+)
func WithUsername(username string) Option {
	return func(o *clientOptions) {
		o.username = username
	}
}

// WithDB 设置数据库索引（仅单机和哨兵模式有效）
func WithDB(db int) Option {
	return func(o *clientOptions) {
		o.db = db
	}
}

// WithPoolSize 设置连接池大小
func WithPoolSize(size int) Option {
	return func(o *clientOptions) {
		o.poolSize = size
	}
}

// WithHooks 添加自定义 Hooks
func WithHooks(hooks ...redis.Hook) Option {
	return func(o *clientOptions) {
		o.hooks = append(o.hooks, hooks...)
	}
}

// WithMetrics 启用 OpenTelemetry Metrics 收集
func WithMetrics(opts ...redisotel.MetricsOption) Option {
	return func(o *clientOptions) {
		o.enableMetrics = true
		o.metricsOpts = opts
	}
}

// WithTracing 启用 OpenTelemetry 分布式追踪
func WithTracing(opts ...redisotel.TracingOption) Option {
	return func(o *clientOptions) {
		o.enableTracing = true
		o.tracingOpts = opts
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *log.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// applyOptions 应用所有选项到配置
func applyOptions(cfg *Config, opts []Option) *clientOptions {
	clientOpts := &clientOptions{}

	for _, opt := range opts {
		if opt != nil {
			opt(clientOpts)
		}
	}

	if clientOpts.password != "" {
		cfg.Password = clientOpts.password
	}
	if clientOpts.username != "" {
		cfg.Username = clientOpts.username
	}
	if clientOpts.db > 0 {
		cfg.DB = clientOpts.db
	}
	if clientOpts.poolSize > 0 {
		cfg.PoolSize = clientOpts.poolSize
	}

	return clientOpts
}
