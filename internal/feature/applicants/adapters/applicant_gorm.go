// Package adapters はapplicantsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gym_backend/internal/feature/applicants/domain"
	"gym_backend/internal/feature/applicants/domain/entity"
	"gym_backend/internal/feature/applicants/usecase"
)

// applicantGorm はApplicantRepositoryインターフェースのGORM実装です。
type applicantGorm struct {
	db *gorm.DB
}

// applicantGormがApplicantRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ApplicantRepository = (*applicantGorm)(nil)

// NewApplicantGorm は指定されたgorm.DB接続でapplicantGormの新しいインスタンスを生成します。
func NewApplicantGorm(db *gorm.DB) *applicantGorm {
	return &applicantGorm{db: db}
}

// Create は新しい申込者をデータベースに保存します。
func (r *applicantGorm) Create(ctx context.Context, a *entity.Applicant) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// List は全申込者を申込時刻の新しい順で返します。
func (r *applicantGorm) List(ctx context.Context) ([]entity.Applicant, error) {
	var list []entity.Applicant
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID はIDで申込者を取得します。
// 存在しない場合、domain.ErrApplicantNotFoundを返します。
func (r *applicantGorm) FindByID(ctx context.Context, id uint) (*entity.Applicant, error) {
	var a entity.Applicant
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicantNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update は申込者の可変フィールドをすべて上書きします。
// CreatedAtは申込時刻として保持し、更新対象に含めません。
func (r *applicantGorm) Update(ctx context.Context, a *entity.Applicant) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Applicant{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"name":                 a.Name,
			"phone":                a.Phone,
			"exercise_frequency":   a.ExerciseFrequency,
			"exercise_purpose":     a.ExercisePurpose,
			"posture_type":         a.PostureType,
			"nerve_response":       a.NerveResponse,
			"participation_intent": a.ParticipationIntent,
			"checked":              a.Checked,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrApplicantNotFound
	}
	return nil
}

// ToggleChecked は確認フラグをデータベース側で原子的に反転させます。
// 読み取ってから書き戻す方式と違い、並行トグルでも反転が失われません。
func (r *applicantGorm) ToggleChecked(ctx context.Context, id uint) (*entity.Applicant, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Applicant{}).
		Where("id = ?", id).
		UpdateColumn("checked", gorm.Expr("NOT checked"))

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrApplicantNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete は申込者を削除します。存在しないIDの削除もエラーにしません。
func (r *applicantGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Applicant{}, id).Error
}
