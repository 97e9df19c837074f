package main

import (
	"time"

	"github.com/kochabx/newswire/ai"
	"github.com/kochabx/newswire/news"
	"github.com/kochabx/newswire/store/db"
	"github.com/kochabx/newswire/store/redis"
)

// Config 服务配置，从 config.yaml 和环境变量加载
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Auth     AuthConfig     `mapstructure:"auth"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	News     news.Config    `mapstructure:"news"`
	AI       AIConfig       `mapstructure:"ai"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" default:":8080"`
	Metrics         bool          `mapstructure:"metrics"`
	Swagger         bool          `mapstructure:"swagger"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
	RateCapacity    int           `mapstructure:"rate_capacity" default:"200"`
	RatePerSec      int           `mapstructure:"rate_per_sec" default:"100"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level" default:"info"`
	File  bool   `mapstructure:"file"`
}

// UpstreamConfig 上游内容源配置
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" default:"10s"`
}

// AuthConfig 管理接口鉴权配置
type AuthConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}

// DBConfig 归档数据库配置，driver 选择生效的驱动段
type DBConfig struct {
	Driver   string            `mapstructure:"driver" default:"sqlite" validate:"oneof=sqlite postgres mysql"`
	SQLite   db.SQLiteConfig   `mapstructure:"sqlite"`
	Postgres db.PostgresConfig `mapstructure:"postgres"`
	MySQL    db.MySQLConfig    `mapstructure:"mysql"`
}

// RedisConfig 缓存配置
type RedisConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	redis.Config `mapstructure:",squash"`
}

// AIConfig 摘要接口配置
type AIConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	ai.Config `mapstructure:",squash"`
}

// driverConfig 返回所选数据库驱动的配置
func (c *Config) driverConfig() db.DriverConfig {
	switch c.DB.Driver {
	case "postgres":
		return &c.DB.Postgres
	case "mysql":
		return &c.DB.MySQL
	default:
		return &c.DB.SQLite
	}
}
