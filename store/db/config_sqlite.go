package db

import (
	"fmt"

	"github.com/kochabx/newswire/core/tag"
)

// SQLiteConfig SQLite 数据库配置
type SQLiteConfig struct {
	// FilePath 数据库文件路径，":memory:" 为内存库
	FilePath string `mapstructure:"file_path" default:"./newswire.db"`

	// SQLite 特有配置
	JournalMode string `mapstructure:"journal_mode" default:"WAL"`
	BusyTimeout int    `mapstructure:"busy_timeout" default:"5000"`
	ForeignKeys bool   `mapstructure:"foreign_keys" default:"true"`

	PoolConfig `mapstructure:"pool"`

	Level string `mapstructure:"level" default:"silent"`

	initialized bool
}

// Driver 返回 SQLite 驱动类型
func (c *SQLiteConfig) Driver() Driver {
	return DriverSQLite
}

// Init 初始化配置，应用默认值
func (c *SQLiteConfig) Init() error {
	if c.initialized {
		return nil
	}
	if err := tag.ApplyDefaults(c); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// DSN 生成 SQLite DSN 连接字符串
func (c *SQLiteConfig) DSN() string {
	return fmt.Sprintf("file:%s?_journal_mode=%s&_busy_timeout=%d&_foreign_keys=%t",
		c.FilePath, c.JournalMode, c.BusyTimeout, c.ForeignKeys)
}

// Pool 返回连接池配置
// SQLite 单文件写入，限制为单连接避免 SQLITE_BUSY
func (c *SQLiteConfig) Pool() *PoolConfig {
	pool := &c.PoolConfig
	if pool.MaxIdleConns == 0 || pool.MaxIdleConns > 1 {
		pool.MaxIdleConns = 1
	}
	if pool.MaxOpenConns == 0 || pool.MaxOpenConns > 1 {
		pool.MaxOpenConns = 1
	}
	return pool
}

// LogLevel 返回日志级别
func (c *SQLiteConfig) LogLevel() LogLevel {
	return ParseLogLevel(c.Level)
}
