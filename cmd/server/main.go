package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gym_backend/internal/app/di"
	"gym_backend/internal/app/router"
	applicantadapters "gym_backend/internal/feature/applicants/adapters"
	applicantentity "gym_backend/internal/feature/applicants/domain/entity"
	applicanthandler "gym_backend/internal/feature/applicants/transport/handler"
	applicantusecase "gym_backend/internal/feature/applicants/usecase"
	authadapters "gym_backend/internal/feature/auth/adapters"
	authhandler "gym_backend/internal/feature/auth/transport/handler"
	authusecase "gym_backend/internal/feature/auth/usecase"
	noticeentity "gym_backend/internal/feature/notice/domain/entity"
	noticehandler "gym_backend/internal/feature/notice/transport/handler"
	noticeusecase "gym_backend/internal/feature/notice/usecase"
	"gym_backend/internal/platform/config"
	platformdb "gym_backend/internal/platform/db"
	"gym_backend/internal/platform/logger"
	platformredis "gym_backend/internal/platform/redis"
	"gym_backend/internal/platform/token"
)

func main() {
	// ロガー
	l, err := logger.Init()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	// 設定
	cfg, err := config.Load(".env")
	if err != nil {
		zap.S().Fatalw("failed to load config", "error", err)
	}

	// db
	db, err := platformdb.Open(cfg.DB)
	if err != nil {
		zap.S().Fatalw("failed to open database", "error", err)
	}

	// マイグレーション
	if err := platformdb.Migrate(db,
		&applicantentity.Applicant{},
		&noticeentity.Notice{},
		&authadapters.SessionModel{},
	); err != nil {
		zap.S().Fatalw("failed to migrate", "error", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
		zap.S().Warnw("redis unavailable, running without cache", "error", err)
	} else if tmp != nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				zap.S().Errorw("failed to close redis client", "error", err)
			}
		}()
	}

	// Repository
	sessionRepo := di.NewSessionRepository(rdb, db)
	applicantRepo := applicantadapters.NewApplicantGorm(db)
	noticeRepo := di.NewNoticeRepository(rdb, db)

	// Usecase
	codec := token.NewCodec(cfg.Session.Secret)
	authUC := authusecase.NewAuthUsecase(cfg.Admin, sessionRepo, codec, cfg.Session.TTL)
	applicantUC := applicantusecase.NewApplicantUsecase(applicantRepo)
	noticeUC := noticeusecase.NewNoticeUsecase(noticeRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	applicantH := applicanthandler.NewApplicantHandler(applicantUC)
	noticeH := noticehandler.NewNoticeHandler(noticeUC)

	// ルータ生成
	r := router.NewRouter(authH, applicantH, noticeH, authUC)

	zap.S().Infow("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
