package usecase

import "errors"

// 認証操作のドメインエラー。上位層はerrors.Isで判別してHTTPレスポンスに変換します。
var (
	// ErrInvalidCredentials はID・パスワードの組が一致しない場合に返されます。
	ErrInvalidCredentials = errors.New("invalid admin id or password")

	// ErrSessionNotFound はセッションが存在しない、または既に削除済みの場合に返されます。
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired はセッションが期限切れ、または失効済みの場合に返されます。
	ErrSessionExpired = errors.New("session expired")
)
