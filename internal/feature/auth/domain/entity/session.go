// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Session は管理者のログインセッションを表します。
// 세션은 서버가 발급·검증하며, 클라이언트가 만료 시각을 조작할 수 없습니다.
type Session struct {
	ID        string     // 64文字の16進ランダム文字列
	UserAgent string     // クライアントのUser-Agentヘッダー
	IPAddress string     // クライアントのIPアドレス
	CreatedAt time.Time  // セッション作成時刻
	ExpiresAt time.Time  // セッション有効期限
	RevokedAt *time.Time // 失効時刻（有効な場合はnil）
}

// IsExpired はセッションが有効期限を過ぎている場合にtrueを返します。
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked はセッションが失効済みの場合にtrueを返します。
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid はセッションが期限内かつ未失効の場合にtrueを返します。
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}

// Remaining はセッションの残り有効時間を返します。期限切れの場合は0です。
func (s *Session) Remaining() time.Duration {
	d := time.Until(s.ExpiresAt)
	if d < 0 {
		return 0
	}
	return d
}
