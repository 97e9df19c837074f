package news

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kochabx/newswire/log"
)

// Refresher 按 cron 表达式周期性刷新文章
type Refresher struct {
	cron    *cron.Cron
	service *Service
	logger  *log.Logger
	timeout time.Duration
}

// NewRefresher 创建定时刷新器，表达式来自服务配置
func NewRefresher(svc *Service, logger *log.Logger) (*Refresher, error) {
	if logger == nil {
		logger = log.G
	}

	r := &Refresher{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		service: svc,
		logger:  logger,
		timeout: 2 * time.Minute,
	}

	if _, err := r.cron.AddFunc(svc.config.RefreshCron, r.run); err != nil {
		return nil, err
	}
	return r, nil
}

// run 单次刷新，失败只记录日志
func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.service.Refresh(ctx); err != nil {
		r.logger.Error().Err(err).Msg("scheduled article refresh failed")
		return
	}
	r.logger.Debug().Dur("elapsed", time.Since(start)).Msg("scheduled article refresh done")
}

// Start 启动定时刷新
func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info().Str("schedule", r.service.config.RefreshCron).Msg("article refresher started")
}

// Stop 停止定时刷新并等待进行中的任务结束
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}
