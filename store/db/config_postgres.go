package db

import (
	"fmt"

	"github.com/kochabx/newswire/core/tag"
)

// PostgresConfig PostgreSQL 数据库配置
type PostgresConfig struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"5432"`
	User     string `mapstructure:"user" default:"postgres"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" default:"newswire"`

	// PostgreSQL 特有配置
	SSLMode        string `mapstructure:"sslmode" default:"disable"`
	TimeZone       string `mapstructure:"timezone" default:"UTC"`
	ConnectTimeout int    `mapstructure:"connect_timeout" default:"10"`

	PoolConfig `mapstructure:"pool"`

	Level string `mapstructure:"level" default:"silent"`

	initialized bool
}

// Driver 返回 PostgreSQL 驱动类型
func (c *PostgresConfig) Driver() Driver {
	return DriverPostgres
}

// Init 初始化配置，应用默认值
func (c *PostgresConfig) Init() error {
	if c.initialized {
		return nil
	}
	if err := tag.ApplyDefaults(c); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// DSN 生成 PostgreSQL DSN 连接字符串
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode, c.TimeZone, c.ConnectTimeout)
}

// Pool 返回连接池配置
func (c *PostgresConfig) Pool() *PoolConfig {
	return &c.PoolConfig
}

// LogLevel 返回日志级别
func (c *PostgresConfig) LogLevel() LogLevel {
	return ParseLogLevel(c.Level)
}
