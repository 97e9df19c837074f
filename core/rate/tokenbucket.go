package rate

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// 令牌桶脚本：按秒补充令牌，桶满丢弃，取不到令牌时拒绝
const tokenBucketLua = `
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])

local bucket = redis.call('HMGET', key, 'tokens', 'last')
local tokens = tonumber(bucket[1])
local last = tonumber(bucket[2])

if tokens == nil then
  tokens = capacity
  last = now
end

local elapsed = math.max(0, now - last)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= requested then
  tokens = tokens - requested
  allowed = 1
end

redis.call('HMSET', key, 'tokens', tokens, 'last', now)
redis.call('EXPIRE', key, math.ceil(capacity / rate) * 2)

return allowed
`

var tokenBucketScript = redis.NewScript(tokenBucketLua)

// TokenBucketLimiter Redis 令牌桶限流器，多实例共享同一配额
type TokenBucketLimiter struct {
	client    redis.UniversalClient
	bucketKey string
	capacity  int
	rate      int
	script    *redis.Script
}

// NewTokenBucketLimiter 创建 Redis 令牌桶限流器
// capacity 为桶容量，rate 为每秒补充的令牌数
func NewTokenBucketLimiter(client redis.UniversalClient, bucketKey string, capacity, rate int) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		client:    client,
		bucketKey: bucketKey,
		capacity:  capacity,
		rate:      rate,
		script:    tokenBucketScript,
	}
}

func (lim *TokenBucketLimiter) Allow() bool {
	return lim.AllowN(time.Now(), 1)
}

func (lim *TokenBucketLimiter) AllowN(t time.Time, n int) bool {
	return lim.AllowNCtx(context.Background(), t, n)
}

func (lim *TokenBucketLimiter) AllowNCtx(ctx context.Context, t time.Time, n int) bool {
	result, err := lim.script.Run(ctx, lim.client, []string{lim.bucketKey}, lim.capacity, lim.rate, t.Unix(), n).Result()
	if err != nil {
		// Redis 不可用时放行，限流属于尽力而为
		return true
	}

	allowed, ok := result.(int64)
	return ok && allowed == 1
}
