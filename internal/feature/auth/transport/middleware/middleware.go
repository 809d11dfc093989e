// Package middleware は管理者専用ルートを保護するginミドルウェアを提供します。
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gym_backend/internal/feature/auth/domain/entity"
)

// ContextSession はginコンテキストに格納されるセッションのキーです。
const ContextSession = "adminSession"

// SessionValidator はセッショントークンの検証を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（middleware）が定義します。
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*entity.Session, error)
}

// AdminRequired は有効な管理者セッションを要求するミドルウェアを返します。
// Authorization: Bearer <token> を検証し、失敗時は401で処理を打ち切ります。
func AdminRequired(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "로그인이 필요합니다.",
			})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		session, err := validator.Validate(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "세션이 만료되었습니다. 다시 로그인해주세요.",
			})
			return
		}

		c.Set(ContextSession, session)
		c.Next()
	}
}
