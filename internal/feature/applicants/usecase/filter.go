package usecase

import (
	"fmt"
	"strings"
	"time"

	"gym_backend/internal/feature/applicants/domain/entity"
)

// Tab は管理画面の確認状態タブです。
type Tab string

const (
	TabAll       Tab = "all"
	TabChecked   Tab = "checked"
	TabUnchecked Tab = "unchecked"
)

// Filter は申込者一覧の絞り込み条件です。
// タブ・日付範囲・テキスト検索はすべてANDで合成されます。
type Filter struct {
	Tab    Tab
	Start  *time.Time // 申込日の下限（その日の0時）
	End    *time.Time // 申込日の上限（その日全体を含む）
	Search string     // 氏名または電話番号の部分一致（大文字小文字無視）
}

// ParseFilter はクエリパラメータからFilterを組み立てます。
// 日付はYYYY-MM-DD形式で、不正な値はエラーになります。
func ParseFilter(tab, startDate, endDate, search string) (Filter, error) {
	f := Filter{Search: strings.TrimSpace(search)}

	switch Tab(tab) {
	case TabAll, TabChecked, TabUnchecked:
		f.Tab = Tab(tab)
	case "":
		f.Tab = TabAll
	default:
		return Filter{}, fmt.Errorf("unknown tab %q", tab)
	}

	if startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid startDate %q: %w", startDate, err)
		}
		f.Start = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid endDate %q: %w", endDate, err)
		}
		f.End = &t
	}
	return f, nil
}

// Match は1件の申込者がフィルタ条件を満たすか判定します。
// 終了日はその日の23:59:59.999…までを含みます。
func (f Filter) Match(a entity.Applicant) bool {
	// タブフィルタ
	if f.Tab == TabChecked && !a.Checked {
		return false
	}
	if f.Tab == TabUnchecked && a.Checked {
		return false
	}

	// 日付フィルタ
	if f.Start != nil && a.CreatedAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && !a.CreatedAt.Before(f.End.AddDate(0, 0, 1)) {
		return false
	}

	// テキスト検索フィルタ。タブ・日付と独立ではなくANDで効かせる
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Phone), q) {
			return false
		}
	}

	return true
}

// Apply はフィルタ条件を満たす申込者のみを返します。元の順序は保持されます。
func (f Filter) Apply(list []entity.Applicant) []entity.Applicant {
	out := make([]entity.Applicant, 0, len(list))
	for _, a := range list {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}
