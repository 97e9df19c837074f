package news

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/kochabx/newswire/core/tag"
	"github.com/kochabx/newswire/errors"
	"github.com/kochabx/newswire/fetch"
	"github.com/kochabx/newswire/log"
)

// Config 新闻服务配置
type Config struct {
	// Topics 需要抓取的主题列表
	Topics []string `mapstructure:"topics" default:"ai"`

	// UpstreamPath 上游文章接口路径，topic 作为查询参数附加
	UpstreamPath string `mapstructure:"upstream_path" default:"/news"`

	// CacheTTL 列表缓存有效期
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"5m"`

	// RefreshCron 定时刷新表达式
	RefreshCron string `mapstructure:"refresh_cron" default:"@every 15m"`

	// RefreshWorkers 刷新协程池大小
	RefreshWorkers int `mapstructure:"refresh_workers" default:"4"`
}

// ApplyDefaults 应用默认值
func (c *Config) ApplyDefaults() error {
	return tag.ApplyDefaults(c)
}

// upstreamClient 上游内容 API 客户端
type upstreamClient interface {
	Get(path string, opts ...fetch.RequestOption) error
}

// archive 文章归档存储
type archive interface {
	Upsert(ctx context.Context, articles []Article) error
	List(ctx context.Context, q ListQuery) ([]Article, error)
	Get(ctx context.Context, externalID string) (*Article, error)
}

// listCache 文章列表缓存
type listCache interface {
	Get(ctx context.Context, q ListQuery) ([]Article, error)
	Set(ctx context.Context, q ListQuery, articles []Article) error
	Invalidate(ctx context.Context) error
}

// Service 新闻服务
// 上游抓取经过重试客户端，读路径走缓存，归档落库
type Service struct {
	config   *Config
	upstream upstreamClient
	archive  archive
	cache    listCache
	logger   *log.Logger
}

// NewService 创建新闻服务，cache 可为 nil（禁用缓存）
func NewService(cfg *Config, upstream upstreamClient, archive archive, cache listCache, logger *log.Logger) (*Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if upstream == nil || archive == nil {
		return nil, errors.Internal("news service requires upstream and archive")
	}
	if logger == nil {
		logger = log.G
	}

	return &Service{
		config:   cfg,
		upstream: upstream,
		archive:  archive,
		cache:    cache,
		logger:   logger,
	}, nil
}

// List 查询文章列表，优先读缓存
func (s *Service) List(ctx context.Context, q ListQuery) ([]Article, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}

	if s.cache != nil {
		if articles, err := s.cache.Get(ctx, q); err != nil {
			// 缓存故障降级到归档
			s.logger.Warn().Err(err).Msg("article cache read failed")
		} else if articles != nil {
			return articles, nil
		}
	}

	articles, err := s.archive.List(ctx, q)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(articles) > 0 {
		if err := s.cache.Set(ctx, q, articles); err != nil {
			s.logger.Warn().Err(err).Msg("article cache write failed")
		}
	}
	return articles, nil
}

// Get 查询单篇文章
func (s *Service) Get(ctx context.Context, externalID string) (*Article, error) {
	if externalID == "" {
		return nil, errors.BadRequest("article id is empty")
	}
	return s.archive.Get(ctx, externalID)
}

// Refresh 并发抓取全部主题并归档，任一主题失败不阻断其余主题
func (s *Service) Refresh(ctx context.Context) error {
	pool, err := ants.NewPool(s.config.RefreshWorkers)
	if err != nil {
		return errors.Internal("create refresh pool: %v", err)
	}
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, topic := range s.config.Topics {
		topic := topic
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.refreshTopic(ctx, topic); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
		}
	}
	wg.Wait()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("article cache invalidation failed")
		}
	}

	if len(errs) > 0 {
		return errors.BadGateway("refresh failed for %d topic(s): %v", len(errs), errors.Join(errs...))
	}

	s.logger.Info().Int("topics", len(s.config.Topics)).Msg("article refresh completed")
	return nil
}

// refreshTopic 抓取单个主题并落库
func (s *Service) refreshTopic(ctx context.Context, topic string) error {
	path := s.config.UpstreamPath + "?topic=" + url.QueryEscape(topic)

	var articles []Article
	if err := s.upstream.Get(path, fetch.WithContext(ctx), fetch.WithResponse(&articles)); err != nil {
		return err
	}
	if len(articles) == 0 {
		return nil
	}
	return s.archive.Upsert(ctx, articles)
}
