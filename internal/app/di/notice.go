package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	noticeadapters "gym_backend/internal/feature/notice/adapters"
	"gym_backend/internal/feature/notice/usecase"
	"gym_backend/internal/platform/cache"
)

// NewNoticeRepository creates a NoticeRepository implementation.
// If Redis is available, the GORM repository is wrapped in a caching
// decorator so the public notice popup does not hit the database on
// every page view.
func NewNoticeRepository(rdb *redis.Client, db *gorm.DB) usecase.NoticeRepository {
	repo := noticeadapters.NewNoticeGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingNoticeRepository(rdb, 5*time.Minute, repo, "notice:current")
}
