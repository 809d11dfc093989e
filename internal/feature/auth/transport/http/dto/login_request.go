// Package dto はauthフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// LoginRequest は POST /api/auth のリクエストボディです。
type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse はログイン成功時のレスポンスです。
// ExpiresAtはエポックミリ秒で、管理画面のカウントダウン表示に使われます。
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// SessionResponse は GET /api/auth/session のレスポンスです。
type SessionResponse struct {
	Success   bool  `json:"success"`
	ExpiresAt int64 `json:"expiresAt"`
	Remaining int64 `json:"remaining"` // 残り秒数
}
