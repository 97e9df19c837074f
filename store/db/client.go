package db

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kochabx/newswire/log"
)

// Client 数据库客户端
type Client struct {
	config  DriverConfig
	db      *gorm.DB
	sqlDB   *sql.DB
	options *clientOptions
	logger  *log.Logger
}

// New 创建新的数据库客户端
func New(cfg DriverConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	c := &Client{
		config:  cfg,
		options: options,
		logger:  options.logger,
	}
	if c.logger == nil {
		c.logger = log.G
	}

	if err := c.connect(); err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), options.connectTimeout)
	defer pingCancel()

	if err := c.Ping(pingCtx); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.logger.Debug().
		Str("driver", cfg.Driver().String()).
		Msg("database client created")

	return c, nil
}

// connect 创建数据库连接
func (c *Client) connect() error {
	dialector, err := c.getDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, c.buildGormConfig())
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	c.configurePool(sqlDB)

	c.db = db
	c.sqlDB = sqlDB
	return nil
}

// getDialector 获取 GORM Dialector
func (c *Client) getDialector() (gorm.Dialector, error) {
	dsn := c.config.DSN()

	switch c.config.Driver() {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, ErrUnsupportedDriver
	}
}

// buildGormConfig 构建 GORM 配置
func (c *Client) buildGormConfig() *gorm.Config {
	if c.options.gormConfig != nil {
		return c.options.gormConfig
	}

	loggerConfig := logger.Config{
		LogLevel:                  logger.LogLevel(c.config.LogLevel()),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}
	if c.options.slowQueryThresh > 0 {
		loggerConfig.SlowThreshold = c.options.slowQueryThresh
	}

	return &gorm.Config{
		Logger: logger.New(gormLogWriter{c.logger}, loggerConfig),
	}
}

// configurePool 配置连接池
func (c *Client) configurePool(sqlDB *sql.DB) {
	pool := c.config.Pool()
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
}

// DB 获取 GORM 数据库实例
func (c *Client) DB() *gorm.DB {
	return c.db
}

// AutoMigrate 迁移数据表结构
func (c *Client) AutoMigrate(models ...any) error {
	if c.db == nil {
		return ErrNotInitialized
	}
	return c.db.AutoMigrate(models...)
}

// Ping 测试数据库连接
func (c *Client) Ping(ctx context.Context) error {
	if c.sqlDB == nil {
		return ErrNotInitialized
	}
	return c.sqlDB.PingContext(ctx)
}

// Close 关闭数据库连接
func (c *Client) Close() error {
	if c.sqlDB != nil {
		return c.sqlDB.Close()
	}
	return nil
}

// Stats 获取连接池统计信息
func (c *Client) Stats() sql.DBStats {
	if c.sqlDB == nil {
		return sql.DBStats{}
	}
	return c.sqlDB.Stats()
}

// IsHealthy 返回健康状态
func (c *Client) IsHealthy() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return c.Ping(ctx) == nil
}

// gormLogWriter 适配 log.Logger 到 GORM logger.Writer
type gormLogWriter struct {
	logger *log.Logger
}

func (w gormLogWriter) Printf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Info().Msgf(format, args...)
	}
}
