package db

import (
	"fmt"
	"time"

	"github.com/kochabx/newswire/core/tag"
)

// MySQLConfig MySQL 数据库配置
type MySQLConfig struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" default:"newswire"`

	// MySQL 特有配置
	Charset   string        `mapstructure:"charset" default:"utf8mb4"`
	ParseTime bool          `mapstructure:"parse_time" default:"true"`
	Loc       string        `mapstructure:"loc" default:"Local"`
	Timeout   time.Duration `mapstructure:"timeout" default:"10s"`

	PoolConfig `mapstructure:"pool"`

	Level string `mapstructure:"level" default:"silent"`

	initialized bool
}

// Driver 返回 MySQL 驱动类型
func (c *MySQLConfig) Driver() Driver {
	return DriverMySQL
}

// Init 初始化配置，应用默认值
func (c *MySQLConfig) Init() error {
	if c.initialized {
		return nil
	}
	if err := tag.ApplyDefaults(c); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// DSN 生成 MySQL DSN 连接字符串
func (c *MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s&timeout=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.Charset, c.ParseTime, c.Loc, c.Timeout)
}

// Pool 返回连接池配置
func (c *MySQLConfig) Pool() *PoolConfig {
	return &c.PoolConfig
}

// LogLevel 返回日志级别
func (c *MySQLConfig) LogLevel() LogLevel {
	return ParseLogLevel(c.Level)
}
