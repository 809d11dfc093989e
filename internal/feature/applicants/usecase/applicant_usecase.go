// Package usecase はapplicantsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"gym_backend/internal/feature/applicants/domain"
	"gym_backend/internal/feature/applicants/domain/entity"
	"gym_backend/internal/shared/kform"
)

// ApplicantRepository abstracts the persistence layer for applicant data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ApplicantRepository interface {
	// Create persists a new applicant.
	Create(ctx context.Context, a *entity.Applicant) error

	// List returns all applicants ordered by creation time, newest first.
	List(ctx context.Context) ([]entity.Applicant, error)

	// FindByID retrieves an applicant by ID.
	// Returns domain.ErrApplicantNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.Applicant, error)

	// Update overwrites all mutable fields of an existing applicant.
	// Returns domain.ErrApplicantNotFound if absent.
	Update(ctx context.Context, a *entity.Applicant) error

	// ToggleChecked atomically negates the checked flag and returns the updated row.
	// Returns domain.ErrApplicantNotFound if absent.
	ToggleChecked(ctx context.Context, id uint) (*entity.Applicant, error)

	// Delete removes an applicant. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uint) error
}

// ApplyInput は公開フォームから送信される申込内容です。
// ParticipationIntentはワイヤー形式のyes/noトークンのまま受け取ります。
type ApplyInput struct {
	Name                string
	Phone               string
	ExerciseFrequency   string
	ExercisePurpose     string
	PostureType         string
	NerveResponse       string
	ParticipationIntent string
}

// UpdateInput は管理者による全フィールド上書きの入力です。
type UpdateInput struct {
	Name                string
	Phone               string
	ExerciseFrequency   string
	ExercisePurpose     string
	PostureType         string
	NerveResponse       string
	ParticipationIntent bool
	Checked             bool
}

// ApplicantUsecase は申込者の作成・一覧・更新・削除を提供します。
type ApplicantUsecase struct {
	repo ApplicantRepository
}

// NewApplicantUsecase はApplicantUsecaseの新しいインスタンスを生成します。
func NewApplicantUsecase(repo ApplicantRepository) *ApplicantUsecase {
	return &ApplicantUsecase{repo: repo}
}

// Apply はフォーム入力を検証・正規化して申込者を登録します。
// クライアント側と同じ検証をサーバーでも行い、不正な入力は保存前に拒否します。
func (u *ApplicantUsecase) Apply(ctx context.Context, in ApplyInput) (*entity.Applicant, error) {
	if !kform.ValidName(in.Name) {
		return nil, domain.ErrInvalidName
	}
	if !kform.ValidPhone(in.Phone) {
		return nil, domain.ErrInvalidPhone
	}

	// 保存形式はハイフン区切りに統一する
	phone, ok := kform.FormatPhone(kform.NormalizePhone(in.Phone))
	if !ok {
		return nil, domain.ErrInvalidPhone
	}

	applicant := &entity.Applicant{
		Name:                in.Name,
		Phone:               phone,
		ExerciseFrequency:   in.ExerciseFrequency,
		ExercisePurpose:     in.ExercisePurpose,
		PostureType:         in.PostureType,
		NerveResponse:       in.NerveResponse,
		ParticipationIntent: in.ParticipationIntent == "yes",
	}

	if err := u.repo.Create(ctx, applicant); err != nil {
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}
	return applicant, nil
}

// List は全申込者を新しい順で返し、指定されたフィルタを適用します。
func (u *ApplicantUsecase) List(ctx context.Context, f Filter) ([]entity.Applicant, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}

// Get はIDで申込者を1件取得します。
func (u *ApplicantUsecase) Get(ctx context.Context, id uint) (*entity.Applicant, error) {
	return u.repo.FindByID(ctx, id)
}

// Update は申込者の全可変フィールドを上書きします。
func (u *ApplicantUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.Applicant, error) {
	applicant := &entity.Applicant{
		ID:                  id,
		Name:                in.Name,
		Phone:               in.Phone,
		ExerciseFrequency:   in.ExerciseFrequency,
		ExercisePurpose:     in.ExercisePurpose,
		PostureType:         in.PostureType,
		NerveResponse:       in.NerveResponse,
		ParticipationIntent: in.ParticipationIntent,
		Checked:             in.Checked,
	}
	if err := u.repo.Update(ctx, applicant); err != nil {
		return nil, err
	}
	return u.repo.FindByID(ctx, id)
}

// ToggleChecked は確認フラグを反転させます。
// 読み取り後に書き込む方式ではなく、ストレージ側の原子的な否定更新を使います。
func (u *ApplicantUsecase) ToggleChecked(ctx context.Context, id uint) (*entity.Applicant, error) {
	return u.repo.ToggleChecked(ctx, id)
}

// Delete は申込者を削除します。存在しないIDの削除は成功として扱います。
func (u *ApplicantUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
