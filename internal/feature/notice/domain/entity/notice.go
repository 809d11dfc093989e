// Package entity はnoticeフィーチャーのドメインエンティティを定義します。
package entity

import (
	"strconv"
	"strings"
	"time"
)

// NoticeSlot はNoticeのslot列に入る唯一の値です。
// slot列の一意制約により、公告は常に最大1件であることを
// アプリケーションのチェックではなくストレージ層で保証します。
const NoticeSlot = "current"

// Notice はメインページに表示される単一の公知事項です。
type Notice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Slot は常にNoticeSlotで、一意インデックスにより2件目の挿入を拒否します。
	Slot string `gorm:"size:16;not null;uniqueIndex" json:"-"`

	// Content は公告本文です。
	Content string `gorm:"type:text;not null" json:"content"`

	// Location は開催場所です。
	Location string `gorm:"size:200" json:"location"`

	// StartTime / EndTime は HH:MM 形式の開催時刻です。
	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayTime は "HH:MM" を「H시 M분」表記に変換します。
// 分が0のときは「H시」のみ、形式外の値はそのまま返します。
func DisplayTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return hhmm
	}
	if m == 0 {
		return strconv.Itoa(h) + "시"
	}
	return strconv.Itoa(h) + "시 " + strconv.Itoa(m) + "분"
}
