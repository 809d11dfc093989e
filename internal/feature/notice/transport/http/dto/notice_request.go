// Package dto はnoticeフィーチャーのリクエスト・レスポンス型を定義します。
package dto

// CreateNoticeRequest は公告作成のリクエストボディです。
type CreateNoticeRequest struct {
	Content   string `json:"content" binding:"required"`
	Location  string `json:"location" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// UpdateNoticeRequest は公告更新のリクエストボディです。対象IDを含みます。
type UpdateNoticeRequest struct {
	ID        uint   `json:"id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Location  string `json:"location" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
