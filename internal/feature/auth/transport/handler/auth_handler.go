// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_backend/internal/feature/auth/domain/entity"
	"gym_backend/internal/feature/auth/transport/http/dto"
	"gym_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login は管理者資格情報を検証し、セッショントークンを発行します。
	Login(ctx context.Context, id, password, userAgent, ip string) (*usecase.LoginResult, error)
	// Validate はトークンに対応する有効なセッションを返します。
	Validate(ctx context.Context, token string) (*entity.Session, error)
	// Logout はトークンに対応するセッションを失効させます。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は管理者ログイン関連のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// BearerToken はAuthorizationヘッダーからBearerトークンを取り出します。
// ヘッダーが無い、または形式が異なる場合は空文字列を返します。
func BearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// Login は POST /api/auth を処理します。
// - リクエストJSONをLoginRequestにバインド、バリデーション失敗時は400
// - 資格情報不一致は401（メッセージは列挙攻撃を避けるため常に同一）
// - 成功時はトークンと有効期限を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.S().Warnw("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.ID, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			zap.S().Warnw("admin login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "아이디 또는 비밀번호가 올바르지 않습니다.",
			})
			return
		}
		zap.S().Errorw("admin login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "로그인 처리 중 오류가 발생했습니다.",
		})
		return
	}

	zap.S().Infow("admin login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:   true,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UnixMilli(),
	})
}

// Logout は DELETE /api/auth を処理し、セッションを失効させます。
// 既に失効・期限切れのセッションでも成功として扱います。
func (h *AuthHandler) Logout(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		zap.S().Errorw("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "로그아웃 처리 중 오류가 발생했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session は GET /api/auth/session を処理します。
// 管理画面のセッションカウントダウンはこのレスポンスのremaining（秒）を表示します。
func (h *AuthHandler) Session(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "세션이 만료되었습니다. 다시 로그인해주세요.",
		})
		return
	}

	session, err := h.auth.Validate(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) || errors.Is(err, usecase.ErrSessionExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "세션이 만료되었습니다. 다시 로그인해주세요.",
			})
			return
		}
		zap.S().Errorw("session check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "세션 확인 중 오류가 발생했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Success:   true,
		ExpiresAt: session.ExpiresAt.UnixMilli(),
		Remaining: int64(session.Remaining().Seconds()),
	})
}
