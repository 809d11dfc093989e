// Package token は管理者セッション用の署名付きトークンを提供します。
// トークンはHS256で署名されたJWTで、sidクレームにサーバー側セッションIDを持ちます。
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken は署名不正・期限切れ・形式不正のトークンを示します。
var ErrInvalidToken = errors.New("invalid token")

// Codec は管理者トークンの生成と検証を行います。
type Codec struct {
	secret []byte
}

// NewCodec は指定されたシークレットでCodecを生成します。
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Generate は指定されたセッションIDと有効期限を持つ署名済みトークンを生成します。
func (c *Codec) Generate(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse はトークンを検証し、含まれるセッションIDを返します。
// 署名アルゴリズムはHMACのみを許可します。
func (c *Codec) Parse(tokenStr string) (string, error) {
	t, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
