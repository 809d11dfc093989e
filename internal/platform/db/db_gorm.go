package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gym_backend/internal/platform/config"
)

// BuildDSN はPostgreSQL接続用のDSN文字列を生成します。
func BuildDSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}

// Open は設定に応じてSQLiteまたはPostgreSQLのgorm接続を開きます。
// TranslateErrorを有効にしているため、重複キーはドライバーに関係なく
// gorm.ErrDuplicatedKey に変換されます。
// PostgreSQLは起動直後に接続できないことがあるため60秒までリトライします。
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.Driver != "postgres" {
		return gorm.Open(gsqlite.Open(cfg.Path), gormCfg)
	}

	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), gormCfg)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		zap.S().Warnw("DB connect failed, retrying...", "error", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate は指定されたモデルのテーブルを作成・更新します。
func Migrate(db *gorm.DB, models ...any) error {
	return db.AutoMigrate(models...)
}
