package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sudooom.mahjong.score/internal/mahjong/riichi"
)

const (
	// ResultKeyPrefix 计分结果 Redis Key 前缀
	ResultKeyPrefix = "mahjong:score:result:"

	// DefaultResultTTL 计分结果默认 TTL
	DefaultResultTTL = 24 * time.Hour
)

// BuildResultKey 构建计分结果 Key
// Key: mahjong:score:result:{fingerprint}
func BuildResultKey(fingerprint string) string {
	return fmt.Sprintf("%s%s", ResultKeyPrefix, fingerprint)
}

// ResultCache 按请求指纹缓存计分结果
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache 创建结果缓存, ttl <= 0 时使用默认值
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

// Get 读取缓存, 未命中返回 (nil, false, nil)
func (c *ResultCache) Get(ctx context.Context, fingerprint string) (*riichi.ScoreResult, bool, error) {
	data, err := c.client.Get(ctx, BuildResultKey(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var result riichi.ScoreResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, err
	}
	return &result, true, nil
}

// Set 写入缓存
func (c *ResultCache) Set(ctx context.Context, fingerprint string, result *riichi.ScoreResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, BuildResultKey(fingerprint), data, c.ttl).Err()
}

// Delete 删除缓存
func (c *ResultCache) Delete(ctx context.Context, fingerprint string) error {
	return c.client.Del(ctx, BuildResultKey(fingerprint)).Err()
}
