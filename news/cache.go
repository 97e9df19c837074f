package news

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kochabx/newswire/store/redis"
)

const cacheKeyPrefix = "newswire:articles:"

// Cache 文章列表的 Redis 缓存
type Cache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewCache 创建文章缓存
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client.GetClient(), ttl: ttl}
}

// key 由查询参数构造缓存键
func (c *Cache) key(q ListQuery) string {
	return fmt.Sprintf("%s%s:%d:%d", cacheKeyPrefix, q.Topic, q.Limit, q.Offset)
}

// Get 读取缓存的文章列表，未命中返回 (nil, nil)
func (c *Cache) Get(ctx context.Context, q ListQuery) ([]Article, error) {
	raw, err := c.client.Get(ctx, c.key(q)).Bytes()
	if err != nil {
		if err == redis.ErrNil {
			return nil, nil
		}
		return nil, err
	}

	var articles []Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Set 写入文章列表缓存
func (c *Cache) Set(ctx context.Context, q ListQuery, articles []Article) error {
	raw, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(q), raw, c.ttl).Err()
}

// Invalidate 清除所有文章缓存（刷新后调用）
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
