package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gym_backend/internal/platform/config"
)

// NewRedisClient は設定からRedisクライアントを生成し、疎通を確認します。
// Hostが未設定の場合は (nil, nil) を返し、呼び出し側はRedisなしで動作します。
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	addr := cfg.Host + ":" + cfg.Port
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zap.S().Errorw("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	zap.S().Infow("Redis connection successful", "address", addr)
	return rdb, nil
}
