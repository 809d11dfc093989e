// Package handler はapplicantsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_backend/internal/feature/applicants/domain"
	"gym_backend/internal/feature/applicants/domain/entity"
	"gym_backend/internal/feature/applicants/transport/http/dto"
	"gym_backend/internal/feature/applicants/usecase"
)

// ApplicantUsecase は申込者操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ApplicantUsecase interface {
	// Apply はフォーム入力を検証して申込者を登録します。
	Apply(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error)
	// List はフィルタ適用済みの申込者一覧を新しい順で返します。
	List(ctx context.Context, f usecase.Filter) ([]entity.Applicant, error)
	// Get はIDで申込者を1件取得します。
	Get(ctx context.Context, id uint) (*entity.Applicant, error)
	// Update は申込者の全可変フィールドを上書きします。
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Applicant, error)
	// ToggleChecked は確認フラグを原子的に反転させます。
	ToggleChecked(ctx context.Context, id uint) (*entity.Applicant, error)
	// Delete は申込者を削除します。
	Delete(ctx context.Context, id uint) error
}

// ApplicantHandler は申込フォームと管理画面のHTTPリクエストを処理します。
type ApplicantHandler struct {
	applicants ApplicantUsecase
}

// NewApplicantHandler はApplicantHandlerの新しいインスタンスを生成します。
func NewApplicantHandler(applicants ApplicantUsecase) *ApplicantHandler {
	return &ApplicantHandler{applicants: applicants}
}

// parseID はパスパラメータ:idを数値IDに変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return 0, false
	}
	return uint(id), true
}

// parseFilter はクエリパラメータからフィルタを組み立てます。
// 不正なタブ・日付は400として処理済みで、okがfalseになります。
func parseFilter(c *gin.Context) (usecase.Filter, bool) {
	f, err := usecase.ParseFilter(
		c.Query("tab"), c.Query("startDate"), c.Query("endDate"), c.Query("q"))
	if err != nil {
		zap.S().Warnw("invalid applicant filter", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return usecase.Filter{}, false
	}
	return f, true
}

// Apply は POST /api/apply を処理します。
// クライアント側と同じ検証をサーバーでも行い、成功時は201で保存済みの行を返します。
func (h *ApplicantHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.S().Warnw("apply validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	applicant, err := h.applicants.Apply(c.Request.Context(), usecase.ApplyInput{
		Name:                req.Name,
		Phone:               req.Phone,
		ExerciseFrequency:   req.ExerciseFrequency,
		ExercisePurpose:     req.ExercisePurpose,
		PostureType:         req.PostureType,
		NerveResponse:       req.NerveResponse,
		ParticipationIntent: req.ParticipationIntent,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidName) || errors.Is(err, domain.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
			return
		}
		zap.S().Errorw("failed to create applicant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "신청 처리 중 오류가 발생했습니다.",
		})
		return
	}

	zap.S().Infow("application submitted", "applicant_id", applicant.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": applicant})
}

// List は GET /api/applicants を処理します。
// tab・startDate・endDate・qクエリでの絞り込みに対応します。
func (h *ApplicantHandler) List(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	list, err := h.applicants.List(c.Request.Context(), f)
	if err != nil {
		zap.S().Errorw("failed to list applicants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "신청자 목록을 불러오지 못했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Toggle は PATCH /api/applicants/:id を処理し、確認フラグを反転させます。
func (h *ApplicantHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	applicant, err := h.applicants.ToggleChecked(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrApplicantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "신청자를 찾을 수 없습니다.",
			})
			return
		}
		zap.S().Errorw("failed to toggle applicant", "error", err, "applicant_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "신청자 상태 변경에 실패했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": applicant})
}

// Update は PUT /api/applicants/:id を処理し、全可変フィールドを上書きします。
func (h *ApplicantHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.S().Warnw("update validation failed", "error", err, "applicant_id", id)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	applicant, err := h.applicants.Update(c.Request.Context(), id, usecase.UpdateInput{
		Name:                req.Name,
		Phone:               req.Phone,
		ExerciseFrequency:   req.ExerciseFrequency,
		ExercisePurpose:     req.ExercisePurpose,
		PostureType:         req.PostureType,
		NerveResponse:       req.NerveResponse,
		ParticipationIntent: req.ParticipationIntent,
		Checked:             req.Checked,
	})
	if err != nil {
		if errors.Is(err, domain.ErrApplicantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "신청자를 찾을 수 없습니다.",
			})
			return
		}
		zap.S().Errorw("failed to update applicant", "error", err, "applicant_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "신청자 수정에 실패했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": applicant})
}

// Delete は DELETE /api/applicants?id= を処理します。
// 既に削除済みのIDでも成功として扱います。
func (h *ApplicantHandler) Delete(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID is required"})
		return
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	if err := h.applicants.Delete(c.Request.Context(), uint(id)); err != nil {
		zap.S().Errorw("failed to delete applicant", "error", err, "applicant_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "신청자 삭제에 실패했습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// writeCSV はCSV本文を添付ファイルとして返します。
// ハングルのファイル名はRFC 5987のfilename*形式でエンコードします。
func writeCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition",
		"attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

// ExportList は GET /api/applicants/export を処理します。
// 一覧と同じフィルタを適用した上でCSVを生成します。
func (h *ApplicantHandler) ExportList(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	list, err := h.applicants.List(c.Request.Context(), f)
	if err != nil {
		zap.S().Errorw("failed to export applicants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "내보내기에 실패했습니다.",
		})
		return
	}

	writeCSV(c, usecase.ListCSVFilename(f.Tab, time.Now()), usecase.BuildListCSV(list))
}

// ExportOne は GET /api/applicants/:id/export を処理します。
func (h *ApplicantHandler) ExportOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	applicant, err := h.applicants.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrApplicantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "신청자를 찾을 수 없습니다.",
			})
			return
		}
		zap.S().Errorw("failed to export applicant", "error", err, "applicant_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "내보내기에 실패했습니다.",
		})
		return
	}

	writeCSV(c, usecase.DetailCSVFilename(*applicant, time.Now()), usecase.BuildDetailCSV(*applicant))
}
