// Package entity はapplicantsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Applicant は公開申込フォームから送信された1件の申込を表します。
// 管理画面で確認・編集・削除される主要エンティティです。
type Applicant struct {
	// ID is the unique identifier for the applicant.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name は申込者の氏名（完成形ハングルのみ）です。
	Name string `gorm:"size:50;not null" json:"name"`

	// Phone は 010-XXXX-XXXX 形式の電話番号です。
	Phone string `gorm:"size:20;not null" json:"phone"`

	// ExerciseFrequency / ExercisePurpose / PostureType はカテゴリーコード、
	// または「기타(その他)」選択時の自由入力テキストです。
	ExerciseFrequency string `gorm:"size:100" json:"exerciseFrequency"`
	ExercisePurpose   string `gorm:"size:100" json:"exercisePurpose"`
	PostureType       string `gorm:"size:100" json:"postureType"`

	// NerveResponse は迷走神経運動PTに関する自由回答です。
	NerveResponse string `gorm:"type:text" json:"nerveResponse"`

	// ParticipationIntent は同好会参加の意向です。ワイヤー上のyes/noから正規化されます。
	ParticipationIntent bool `json:"participationIntent"`

	// Checked は管理者が確認済みかどうかのフラグです。
	Checked bool `gorm:"default:false" json:"checked"`

	// CreatedAt は申込時刻です。挿入時に設定され、以後変更されません。
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt は最終更新時刻です。
	UpdatedAt time.Time `json:"updatedAt"`
}
