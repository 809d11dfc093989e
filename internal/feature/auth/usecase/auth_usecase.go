// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gym_backend/internal/feature/auth/domain/entity"
	"gym_backend/internal/platform/config"
)

// TokenCodec は署名付きセッショントークンの生成・検証を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/token）ではなくコンシューマー（usecase）が定義します。
type TokenCodec interface {
	// Generate は指定されたセッションIDと有効期限の署名済みトークンを生成します。
	Generate(sessionID string, expiresAt time.Time) (string, error)
	// Parse はトークンを検証し、セッションIDを返します。
	Parse(token string) (string, error)
}

// LoginResult はログイン成功時に発行されるトークン情報です。
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase は単一管理者アカウントの認証とセッション管理を実装します。
// 資格情報は環境変数で設定された1組のみで、ユーザーテーブルは存在しません。
type AuthUsecase struct {
	admin    config.AdminConfig
	sessions SessionRepository
	codec    TokenCodec
	ttl      time.Duration
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(admin config.AdminConfig, sessions SessionRepository, codec TokenCodec, ttl time.Duration) *AuthUsecase {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthUsecase{
		admin:    admin,
		sessions: sessions,
		codec:    codec,
		ttl:      ttl,
	}
}

// verifyPassword は設定された管理者パスワードと照合します。
// ADMIN_PASSWORD_HASH(bcrypt)が設定されていればそちらを優先し、
// 平文設定の場合もタイミング攻撃を避けるため定数時間比較を使います。
func (u *AuthUsecase) verifyPassword(password string) bool {
	if u.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(password)) == nil
	}
	if u.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u.admin.Password), []byte(password)) == 1
}

// newSessionID は64文字の16進ランダムセッションIDを生成します。
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Login は管理者の資格情報を検証し、成功時にサーバー側セッションを作成して
// 署名付きトークンを返します。ID・パスワードのどちらが誤っていても同じエラーを返します。
func (u *AuthUsecase) Login(ctx context.Context, id, password, userAgent, ip string) (*LoginResult, error) {
	idMatch := subtle.ConstantTimeCompare([]byte(u.admin.ID), []byte(id)) == 1
	passMatch := u.verifyPassword(password)
	if !idMatch || !passMatch {
		return nil, ErrInvalidCredentials
	}

	sid, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        sid,
		UserAgent: userAgent,
		IPAddress: ip,
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.codec.Generate(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Validate はトークンを検証し、対応する有効なセッションを返します。
// 署名不正はErrSessionNotFound、期限切れ・失効済みはErrSessionExpiredを返します。
func (u *AuthUsecase) Validate(ctx context.Context, tokenStr string) (*entity.Session, error) {
	sid, err := u.codec.Parse(tokenStr)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := u.sessions.FindByID(ctx, sid)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Logout はトークンに対応するセッションを失効させます。
// 解釈できないトークンや既に存在しないセッションのログアウトも成功として扱います。
func (u *AuthUsecase) Logout(ctx context.Context, tokenStr string) error {
	sid, err := u.codec.Parse(tokenStr)
	if err != nil {
		return nil
	}
	if err := u.sessions.Revoke(ctx, sid); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}
