// Package dto はapplicantsフィーチャーのリクエスト・レスポンス型を定義します。
package dto

// ApplyRequest は公開申込フォームのリクエストボディです。
// participationIntentはワイヤー形式のyes/noトークンで受け取ります。
type ApplyRequest struct {
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	ExerciseFrequency   string `json:"exerciseFrequency" binding:"required"`
	ExercisePurpose     string `json:"exercisePurpose" binding:"required"`
	PostureType         string `json:"postureType" binding:"required"`
	NerveResponse       string `json:"nerveResponse" binding:"required"`
	ParticipationIntent string `json:"participationIntent" binding:"required,oneof=yes no"`
}

// UpdateRequest は管理者による申込者の全フィールド上書きリクエストです。
type UpdateRequest struct {
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	ExerciseFrequency   string `json:"exerciseFrequency"`
	ExercisePurpose     string `json:"exercisePurpose"`
	PostureType         string `json:"postureType"`
	NerveResponse       string `json:"nerveResponse"`
	ParticipationIntent bool   `json:"participationIntent"`
	Checked             bool   `json:"checked"`
}
