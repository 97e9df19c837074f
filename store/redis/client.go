package redis

import (
	"context"
	"runtime"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/kochabx/newswire/log"
)

// Client Redis 统一客户端（支持单机/集群/哨兵模式）
type Client struct {
	client redis.UniversalClient
	config *Config
	logger *log.Logger
}

// New 创建新的 Redis 客户端
// 根据配置自动选择单机/集群/哨兵模式
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts := applyOptions(cfg, opts)
	logger := clientOpts.logger
	if logger == nil {
		logger = log.G
	}

	c := &Client{
		config: cfg,
		logger: logger,
		client: redis.NewUniversalClient(buildUniversalOptions(cfg)),
	}

	// 错误时自动清理
	var success bool
	defer func() {
		if !success {
			c.client.Close()
		}
	}()

	if err := c.setupHooks(clientOpts); err != nil {
		return nil, err
	}
	if err := c.Ping(context.Background()); err != nil {
		return nil, err
	}

	success = true
	c.logger.Debug().Strs("addrs", cfg.Addrs).Msg("redis client created")
	return c, nil
}

// buildUniversalOptions 构建 redis.UniversalOptions
func buildUniversalOptions(cfg *Config) *redis.UniversalOptions {
	poolSize := cfg.PoolSize
	if poolSize == 0 {
		poolSize = 10 * runtime.GOMAXPROCS(0)
	}

	return &redis.UniversalOptions{
		Addrs:      cfg.Addrs,
		MasterName: cfg.MasterName,
		Username:   cfg.Username,
		Password:   cfg.Password,
		DB:         cfg.DB,
		Protocol:   cfg.Protocol,

		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,

		PoolSize:        poolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxIdleTime: cfg.MaxIdleTime,
		PoolTimeout:     cfg.PoolTimeout,

		MaxRetries: cfg.MaxRetries,
		TLSConfig:  cfg.TLSConfig,
	}
}

// setupHooks 设置 Hooks
func (c *Client) setupHooks(opts *clientOptions) error {
	for _, hook := range opts.hooks {
		c.client.AddHook(hook)
	}

	if opts.enableTracing {
		if err := redisotel.InstrumentTracing(c.client, opts.tracingOpts...); err != nil {
			return err
		}
	}

	if opts.enableMetrics {
		if err := redisotel.InstrumentMetrics(c.client, opts.metricsOpts...); err != nil {
			return err
		}
	}

	return nil
}

// Ping 测试连接是否正常
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx).Result()
	return err
}

// Close 关闭客户端
func (c *Client) Close() error {
	return c.client.Close()
}

// Stats 获取连接池统计信息
func (c *Client) Stats() *redis.PoolStats {
	return c.client.PoolStats()
}

// GetClient 获取底层 redis.UniversalClient
func (c *Client) GetClient() redis.UniversalClient {
	return c.client
}
