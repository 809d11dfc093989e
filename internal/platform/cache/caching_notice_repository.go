// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gym_backend/internal/feature/notice/domain/entity"
	"gym_backend/internal/feature/notice/usecase"
)

// nullValue は「公告なし」状態のキャッシュ表現です。
// 未登録を区別してキャッシュすることで、公開ページからの
// 読み取りが毎回DBに落ちるのを防ぎます。
const nullValue = "null"

// CachingNoticeRepository decorates a NoticeRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads of the current notice come from
// Redis; every write invalidates the cached entry.
type CachingNoticeRepository struct {
	inner usecase.NoticeRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// NewCachingNoticeRepository decorates a NoticeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If key is empty, it uses "notice:current".
func NewCachingNoticeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NoticeRepository, key string) *CachingNoticeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if key == "" {
		key = "notice:current"
	}
	return &CachingNoticeRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// Create persists the notice and invalidates the cached entry.
func (c *CachingNoticeRepository) Create(ctx context.Context, n *entity.Notice) error {
	if err := c.inner.Create(ctx, n); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Latest retrieves the current notice, checking cache first then falling back
// to the database. Both the notice and its absence are cached.
func (c *CachingNoticeRepository) Latest(ctx context.Context) (*entity.Notice, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Latest(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		if string(b) == nullValue {
			return nil, nil
		}
		var out entity.Notice
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Latest(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if out == nil {
		_ = c.rdb.Set(ctx, c.key, nullValue, c.ttl).Err()
		return nil, nil
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}
	return out, nil
}

// Update overwrites the notice and invalidates the cached entry.
func (c *CachingNoticeRepository) Update(ctx context.Context, n *entity.Notice) error {
	if err := c.inner.Update(ctx, n); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes the notice and invalidates the cached entry.
func (c *CachingNoticeRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate removes the cached entry. Best effort: don't fail the write if
// cache deletion fails.
func (c *CachingNoticeRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.key).Err()
}
