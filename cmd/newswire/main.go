package main

import (
	"context"
	"flag"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kochabx/newswire/ai"
	"github.com/kochabx/newswire/app"
	"github.com/kochabx/newswire/config"
	"github.com/kochabx/newswire/core/rate"
	"github.com/kochabx/newswire/fetch"
	"github.com/kochabx/newswire/log"
	middleware "github.com/kochabx/newswire/middleware/http"
	"github.com/kochabx/newswire/news"
	"github.com/kochabx/newswire/store/db"
	"github.com/kochabx/newswire/store/redis"
	httpx "github.com/kochabx/newswire/transport/http"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", ".", "directory containing config.yaml")
	flag.Parse()

	cfg := &Config{}
	loader := config.New(cfg, config.WithLoader(
		config.NewFileLoader("config.yaml", []string{configPath}, nil, nil),
	))
	if err := loader.Load(); err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	logger := newLogger(cfg)
	log.SetGlobalLogger(logger)

	application, cleanup, err := buildApplication(cfg, logger)
	if err != nil {
		if cleanup != nil {
			cleanup()
		}
		log.Fatal().Err(err).Msg("build application")
	}
	defer cleanup()

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("application exited")
	}
}

// newLogger 按配置构建全局日志
func newLogger(cfg *Config) *log.Logger {
	opts := []log.Option{
		log.WithLevel(log.ParseLevel(cfg.Log.Level)),
		log.WithService("newswire"),
	}

	if cfg.Log.File {
		logger, err := log.NewMulti(log.FileConfig{}, opts...)
		if err == nil {
			return logger
		}
		log.Warn().Err(err).Msg("file logging unavailable, falling back to console")
	}
	return log.New(opts...)
}

// buildApplication 组装全部依赖并返回应用实例
func buildApplication(cfg *Config, logger *log.Logger) (*app.Application, func(), error) {
	closers := make([]func(), 0, 4)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// 文章归档
	dbClient, err := db.New(cfg.driverConfig(), db.WithLogger(logger))
	if err != nil {
		return nil, cleanup, err
	}
	closers = append(closers, func() { dbClient.Close() })

	repo, err := news.NewRepository(dbClient)
	if err != nil {
		return nil, cleanup, err
	}

	// 缓存和限流依赖 Redis，未启用时限流退化为本地令牌桶
	var (
		cache       *news.Cache
		redisClient *redis.Client
		limiter     rate.Limiter
	)
	if cfg.Redis.Enabled {
		redisClient, err = redis.New(&cfg.Redis.Config,
			redis.WithLogger(logger),
			redis.WithTracing(),
		)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { redisClient.Close() })

		cache = news.NewCache(redisClient, cfg.News.CacheTTL)
		limiter = rate.NewTokenBucketLimiter(redisClient.GetClient(), "newswire:ratelimit",
			cfg.Server.RateCapacity, cfg.Server.RatePerSec)
	} else {
		limiter = rate.NewLocalTokenBucketLimiter(cfg.Server.RateCapacity, cfg.Server.RatePerSec)
	}

	// 上游内容源
	upstream := fetch.New(cfg.Upstream.BaseURL, fetch.WithTimeout(cfg.Upstream.Timeout))

	newsService, err := newNewsService(cfg, upstream, repo, cache, logger)
	if err != nil {
		return nil, cleanup, err
	}

	refresher, err := news.NewRefresher(newsService, logger)
	if err != nil {
		return nil, cleanup, err
	}
	refresher.Start()

	engine, err := buildRouter(cfg, logger, newsService, limiter)
	if err != nil {
		return nil, cleanup, err
	}

	serverOpts := []httpx.Option{
		httpx.WithMeta(httpx.Meta{Name: "newswire"}),
		httpx.WithHealthOptions(httpx.HealthOption{Enabled: true}),
		httpx.WithHealthCheck(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			return dbClient.Ping(ctx)
		}),
	}
	if redisClient != nil {
		serverOpts = append(serverOpts, httpx.WithHealthCheck(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			return redisClient.Ping(ctx)
		}))
	}
	if cfg.Server.Metrics {
		serverOpts = append(serverOpts, httpx.WithMetricsOptions(httpx.MetricsOption{Enabled: true}))
	}
	if cfg.Server.Swagger {
		serverOpts = append(serverOpts, httpx.WithSwagOptions(httpx.SwagOption{Enabled: true}))
	}

	server := httpx.NewServer(cfg.Server.Addr, engine, serverOpts...)

	application := app.New(
		app.WithServer(server),
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithClose("refresher", func(context.Context) error {
			refresher.Stop()
			return nil
		}, 30*time.Second),
	)

	return application, cleanup, nil
}

// newNewsService 组装新闻服务，cache 为 nil 时禁用缓存
func newNewsService(cfg *Config, upstream *fetch.Client, repo *news.Repository, cache *news.Cache, logger *log.Logger) (*news.Service, error) {
	if cache == nil {
		return news.NewService(&cfg.News, upstream, repo, nil, logger)
	}
	return news.NewService(&cfg.News, upstream, repo, cache, logger)
}

// buildRouter 构建 gin 路由
func buildRouter(cfg *Config, logger *log.Logger, newsService *news.Service, limiter rate.Limiter) (*gin.Engine, error) {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Secure(),
		middleware.Cors(),
		middleware.Logger(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter:   limiter,
			SkipPaths: []string{"/health", "/metrics"},
		}),
	)
	if cfg.Server.Metrics {
		r.Use(middleware.Metrics())
	}

	newsHandler := news.NewHandler(newsService, logger)

	api := r.Group("/api/v1")
	newsHandler.Register(api)

	admin := api.Group("/admin")
	admin.Use(middleware.Auth(middleware.AuthConfig{Secret: cfg.Auth.Secret}))
	newsHandler.RegisterAdmin(admin)

	if cfg.AI.Enabled {
		aiClient, err := ai.New(&cfg.AI.Config)
		if err != nil {
			return nil, err
		}
		ai.NewHandler(aiClient, logger).Register(api)
	}

	return r, nil
}
