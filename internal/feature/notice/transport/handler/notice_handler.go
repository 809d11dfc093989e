// Package handler はnoticeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_backend/internal/feature/notice/domain"
	"gym_backend/internal/feature/notice/domain/entity"
	"gym_backend/internal/feature/notice/transport/http/dto"
	"gym_backend/internal/feature/notice/usecase"
)

// NoticeUsecase は公告操作のユースケースを定義します。
type NoticeUsecase interface {
	Create(ctx context.Context, in usecase.NoticeInput) (*entity.Notice, error)
	Latest(ctx context.Context) (*entity.Notice, error)
	Update(ctx context.Context, id uint, in usecase.NoticeInput) (*entity.Notice, error)
	Delete(ctx context.Context, id uint) error
}

// NoticeHandler は公告のHTTPリクエストを処理します。
type NoticeHandler struct {
	notices NoticeUsecase
}

// NewNoticeHandler はNoticeHandlerの新しいインスタンスを生成します。
func NewNoticeHandler(notices NoticeUsecase) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// Latest は GET /api/notice を処理します。
// 公開ページの公告ポップアップが参照する唯一の読み取り口で、
// 未登録の場合はnoticeをnullで返します。
func (h *NoticeHandler) Latest(c *gin.Context) {
	notice, err := h.notices.Latest(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to fetch notice", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "공지사항을 불러오지 못했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notice": notice})
}

// Create は POST /api/notice を処理します。
// 公告が既に存在する場合は409を返します。同時作成の競合は
// ストレージの一意制約が裁定するため、ここに事前チェックはありません。
func (h *NoticeHandler) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.S().Warnw("notice validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	notice, err := h.notices.Create(c.Request.Context(), usecase.NoticeInput{
		Content:   req.Content,
		Location:  req.Location,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoticeExists) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "이미 등록된 공지사항이 있습니다. 새로운 공지를 등록하려면 먼저 기존 공지를 삭제해주세요.",
			})
			return
		}
		zap.S().Errorw("failed to create notice", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "공지사항 등록에 실패했습니다.",
		})
		return
	}

	zap.S().Infow("notice created", "notice_id", notice.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "notice": notice})
}

// Update は PUT /api/notice を処理します。対象IDはボディに含まれます。
func (h *NoticeHandler) Update(c *gin.Context) {
	var req dto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.S().Warnw("notice validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	notice, err := h.notices.Update(c.Request.Context(), req.ID, usecase.NoticeInput{
		Content:   req.Content,
		Location:  req.Location,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoticeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "공지사항 수정에 실패했습니다.",
			})
			return
		}
		zap.S().Errorw("failed to update notice", "error", err, "notice_id", req.ID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "공지사항 수정에 실패했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notice": notice})
}

// Delete は DELETE /api/notice?id= を処理します。
func (h *NoticeHandler) Delete(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Notice ID is required"})
		return
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	if err := h.notices.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNoticeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "공지사항을 찾을 수 없습니다.",
			})
			return
		}
		zap.S().Errorw("failed to delete notice", "error", err, "notice_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "공지사항 삭제에 실패했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
