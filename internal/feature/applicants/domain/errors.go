// Package domain はapplicantsフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrApplicantNotFound は指定されたIDの申込者が存在しない場合に返されます。
	ErrApplicantNotFound = errors.New("applicant not found")

	// ErrInvalidName は氏名が完成形ハングルのみで構成されていない場合に返されます。
	ErrInvalidName = errors.New("name must contain only Hangul syllables")

	// ErrInvalidPhone は電話番号が010で始まる11桁でない場合に返されます。
	ErrInvalidPhone = errors.New("phone must be 11 digits starting with 010")
)
