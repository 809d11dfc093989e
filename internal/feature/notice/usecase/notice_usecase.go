// Package usecase はnoticeフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"gym_backend/internal/feature/notice/domain/entity"
)

// NoticeRepository abstracts the persistence layer for the notice singleton.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NoticeRepository interface {
	// Create persists a new notice.
	// Returns domain.ErrNoticeExists when a notice row already occupies the slot.
	Create(ctx context.Context, n *entity.Notice) error

	// Latest returns the current notice, or nil when none exists.
	Latest(ctx context.Context) (*entity.Notice, error)

	// Update overwrites the mutable fields of an existing notice.
	// Returns domain.ErrNoticeNotFound if absent.
	Update(ctx context.Context, n *entity.Notice) error

	// Delete removes a notice by ID.
	// Returns domain.ErrNoticeNotFound if absent.
	Delete(ctx context.Context, id uint) error
}

// NoticeInput は公告の作成・更新に共通する入力です。
type NoticeInput struct {
	Content   string
	Location  string
	StartTime string
	EndTime   string
}

// NoticeUsecase は単一公告の作成・取得・更新・削除を提供します。
type NoticeUsecase struct {
	repo NoticeRepository
}

// NewNoticeUsecase はNoticeUsecaseの新しいインスタンスを生成します。
func NewNoticeUsecase(repo NoticeRepository) *NoticeUsecase {
	return &NoticeUsecase{repo: repo}
}

// Create は新しい公告を登録します。
// 既に1件存在する場合、2件目を挿入しようとした側だけが
// domain.ErrNoticeExistsを受け取ります。事前の存在チェックは行わず、
// slot列の一意制約に同時作成の裁定を委ねます。
func (u *NoticeUsecase) Create(ctx context.Context, in NoticeInput) (*entity.Notice, error) {
	notice := &entity.Notice{
		Slot:      entity.NoticeSlot,
		Content:   in.Content,
		Location:  in.Location,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := u.repo.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Latest は現在の公告を返します。未登録の場合は(nil, nil)です。
func (u *NoticeUsecase) Latest(ctx context.Context) (*entity.Notice, error) {
	return u.repo.Latest(ctx)
}

// Update は指定IDの公告の全フィールドを上書きします。
func (u *NoticeUsecase) Update(ctx context.Context, id uint, in NoticeInput) (*entity.Notice, error) {
	notice := &entity.Notice{
		ID:        id,
		Content:   in.Content,
		Location:  in.Location,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := u.repo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return u.repo.Latest(ctx)
}

// Delete は公告を削除します。存在しないIDはdomain.ErrNoticeNotFoundになります。
func (u *NoticeUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
