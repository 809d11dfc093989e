package router

import (
	"time"

	"github.com/gin-gonic/gin"

	applicanthandler "gym_backend/internal/feature/applicants/transport/handler"
	authhandler "gym_backend/internal/feature/auth/transport/handler"
	"gym_backend/internal/feature/auth/transport/middleware"
	noticehandler "gym_backend/internal/feature/notice/transport/handler"
	"gym_backend/internal/platform/http/handler"
	"gym_backend/internal/shared/ratelimiter"
)

// NewRouter は全エンドポイントを登録したginエンジンを構築します。
// 公開ルートは誰でも呼べますが、申込フォームはレート制限付きです。
// /api配下の管理ルートはセッションミドルウェアで保護されます。
func NewRouter(auth *authhandler.AuthHandler, applicants *applicanthandler.ApplicantHandler,
	notices *noticehandler.NoticeHandler, validator middleware.SessionValidator) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 管理者ログイン（セッショントークン発行）
	r.POST("/api/auth", auth.Login)
	// 公開申込フォーム。連投対策に1分10回のレート制限
	applyLimiter := ratelimiter.NewRateLimiter(10, time.Minute)
	r.POST("/api/apply", applyLimiter.Middleware(), applicants.Apply)
	// メインページの公告ポップアップ
	r.GET("/api/notice", notices.Latest)
	// ログアウトは期限切れセッションでも成功させるため認証を課さない
	r.DELETE("/api/auth", auth.Logout)

	// 認証必須のルート
	admin := r.Group("/api")
	admin.Use(middleware.AdminRequired(validator))
	{
		admin.GET("/auth/session", auth.Session)

		admin.GET("/applicants", applicants.List)
		admin.GET("/applicants/export", applicants.ExportList)
		admin.GET("/applicants/:id/export", applicants.ExportOne)
		admin.PATCH("/applicants/:id", applicants.Toggle)
		admin.PUT("/applicants/:id", applicants.Update)
		admin.DELETE("/applicants", applicants.Delete)

		admin.POST("/notice", notices.Create)
		admin.PUT("/notice", notices.Update)
		admin.DELETE("/notice", notices.Delete)
	}

	return r
}
