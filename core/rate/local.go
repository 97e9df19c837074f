package rate

import (
	"context"
	"sync"
	"time"
)

// LocalTokenBucketLimiter 进程内令牌桶限流器，适合单实例部署和测试
type LocalTokenBucketLimiter struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	last     time.Time
}

// NewLocalTokenBucketLimiter 创建进程内令牌桶限流器
func NewLocalTokenBucketLimiter(capacity, rate int) *LocalTokenBucketLimiter {
	return &LocalTokenBucketLimiter{
		capacity: float64(capacity),
		rate:     float64(rate),
		tokens:   float64(capacity),
		last:     time.Now(),
	}
}

func (lim *LocalTokenBucketLimiter) Allow() bool {
	return lim.AllowN(time.Now(), 1)
}

func (lim *LocalTokenBucketLimiter) AllowN(t time.Time, n int) bool {
	lim.mu.Lock()
	defer lim.mu.Unlock()

	elapsed := t.Sub(lim.last).Seconds()
	if elapsed > 0 {
		lim.tokens = min(lim.capacity, lim.tokens+elapsed*lim.rate)
		lim.last = t
	}

	if lim.tokens < float64(n) {
		return false
	}

	lim.tokens -= float64(n)
	return true
}

func (lim *LocalTokenBucketLimiter) AllowNCtx(_ context.Context, t time.Time, n int) bool {
	return lim.AllowN(t, n)
}
