package redis

import (
	"crypto/tls"
	"time"

	"github.com/kochabx/newswire/core/tag"
)

// Config Redis 统一配置（支持单机/集群/哨兵模式）
type Config struct {
	// Addrs Redis 地址列表
	// 单机模式: ["localhost:6379"]
	// 集群模式: ["node1:6379", "node2:6379", "node3:6379"]
	// 哨兵模式: ["sentinel1:26379", "sentinel2:26379"]
	Addrs []string `mapstructure:"addrs"`

	// MasterName 哨兵模式的主节点名称
	MasterName string `mapstructure:"master_name"`

	// Username Redis 用户名 (Redis 6.0+)
	Username string `mapstructure:"username"`

	// Password Redis 密码
	Password string `mapstructure:"password"`

	// DB 数据库索引，集群模式忽略此字段
	DB int `mapstructure:"db"`

	// Protocol Redis 协议版本，2: RESP2，3: RESP3
	Protocol int `mapstructure:"protocol" default:"3"`

	// DialTimeout 连接超时时间
	DialTimeout time.Duration `mapstructure:"dial_timeout" default:"5s"`

	// ReadTimeout 读操作超时时间
	ReadTimeout time.Duration `mapstructure:"read_timeout" default:"3s"`

	// WriteTimeout 写操作超时时间
	WriteTimeout time.Duration `mapstructure:"write_timeout" default:"3s"`

	// PoolSize 连接池最大连接数
	// 0 表示使用默认值: 10 * runtime.GOMAXPROCS
	PoolSize int `mapstructure:"pool_size"`

	// MinIdleConns 最小空闲连接数
	MinIdleConns int `mapstructure:"min_idle_conns"`

	// MaxIdleTime 空闲连接最大存活时间
	MaxIdleTime time.Duration `mapstructure:"max_idle_time" default:"5m"`

	// PoolTimeout 从连接池获取连接的超时时间
	PoolTimeout time.Duration `mapstructure:"pool_timeout" default:"4s"`

	// MaxRetries 命令失败后的最大重试次数
	// -1: 禁用重试，0: 默认重试 3 次
	MaxRetries int `mapstructure:"max_retries"`

	// TLSConfig TLS 配置，设置后将使用加密连接
	TLSConfig *tls.Config `mapstructure:"-"`
}

// ApplyDefaults 应用默认值
func (c *Config) ApplyDefaults() error {
	return tag.ApplyDefaults(c)
}

// Validate 验证配置是否有效
func (c *Config) Validate() error {
	if len(c.Addrs) == 0 {
		return ErrEmptyAddrs
	}

	if c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// Single 创建单机模式配置
func Single(addr string) *Config {
	return &Config{Addrs: []string{addr}}
}

// Sentinel 创建哨兵模式配置
func Sentinel(masterName string, addrs ...string) *Config {
	return &Config{Addrs: addrs, MasterName: masterName}
}
