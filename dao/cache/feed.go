package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const feedVersionKey = "feed:version"

// FeedStorage 列表页缓存
// 页内容按 (版本号, 查询参数) 作 key, 失效通过版本号自增实现,
// 旧版本的页不再被读到, 由 TTL 自然过期
type FeedStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewFeedStorage(redis *redis.Client) *FeedStorage {
	return &FeedStorage{redis: redis, ttl: 30 * time.Second}
}

func (s *FeedStorage) version(ctx context.Context) int64 {
	v, err := s.redis.Get(ctx, feedVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (s *FeedStorage) pageKey(ctx context.Context, queryKey string) string {
	return fmt.Sprintf("feed:v%d:%s", s.version(ctx), queryKey)
}

// GetPage 读缓存页, miss 返回 false
func (s *FeedStorage) GetPage(ctx context.Context, queryKey string, dst any) bool {
	raw, err := s.redis.Get(ctx, s.pageKey(ctx, queryKey)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (s *FeedStorage) SetPage(ctx context.Context, queryKey string, page any) {
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	// 缓存失败不影响主流程
	s.redis.Set(ctx, s.pageKey(ctx, queryKey), raw, s.ttl)
}

// Invalidate 任何影响列表的写操作之后调用
func (s *FeedStorage) Invalidate(ctx context.Context) {
	s.redis.Incr(ctx, feedVersionKey)
}
