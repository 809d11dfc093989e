// Package domain はnoticeフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrNoticeExists は公告が既に1件存在する状態での作成要求を表します。
	ErrNoticeExists = errors.New("notice already exists")

	// ErrNoticeNotFound は対象の公告が存在しないことを表します。
	ErrNoticeNotFound = errors.New("notice not found")
)
