// Package adapters はnoticeフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gym_backend/internal/feature/notice/domain"
	"gym_backend/internal/feature/notice/domain/entity"
	"gym_backend/internal/feature/notice/usecase"
)

// noticeGorm はNoticeRepositoryインターフェースのGORM実装です。
// 公告が最大1件であることは、アプリケーション側の存在チェックではなく
// slot列の一意インデックスで保証されます。
type noticeGorm struct {
	db *gorm.DB
}

// noticeGormがNoticeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.NoticeRepository = (*noticeGorm)(nil)

// NewNoticeGorm は指定されたgorm.DB接続でnoticeGormの新しいインスタンスを生成します。
func NewNoticeGorm(db *gorm.DB) *noticeGorm {
	return &noticeGorm{db: db}
}

// Create は公告を挿入します。slot列の一意制約違反はErrNoticeExistsに変換されます。
func (r *noticeGorm) Create(ctx context.Context, n *entity.Notice) error {
	if n.Slot == "" {
		n.Slot = entity.NoticeSlot
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrNoticeExists
		}
		return err
	}
	return nil
}

// Latest は現在の公告を返します。未登録の場合は(nil, nil)です。
func (r *noticeGorm) Latest(ctx context.Context) (*entity.Notice, error) {
	var n entity.Notice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Update は公告の可変フィールドを上書きします。slotとcreated_atは変更しません。
func (r *noticeGorm) Update(ctx context.Context, n *entity.Notice) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Notice{}).
		Where("id = ?", n.ID).
		Updates(map[string]any{
			"content":    n.Content,
			"location":   n.Location,
			"start_time": n.StartTime,
			"end_time":   n.EndTime,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}

// Delete は公告をIDで削除します。
func (r *noticeGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}
