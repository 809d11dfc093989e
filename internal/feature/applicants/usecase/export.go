package usecase

import (
	"strings"
	"time"

	"gym_backend/internal/feature/applicants/domain/entity"
)

// utf8BOM を先頭に付けることで、表計算ソフトがハングルを正しくデコードできます。
const utf8BOM = "\uFEFF"

// csvTimeLayout はエクスポートに使う申込日時の形式です。
const csvTimeLayout = "2006-01-02 15:04:05"

// csvField はCSVの1フィールドを引用符付きで整形します。
// フィールド内の二重引用符は二重化してエスケープします。
func csvField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// flatten は自由回答からカンマと改行を除去し、1行1レコードを保ちます。
func flatten(v string) string {
	v = strings.ReplaceAll(v, ",", " ")
	v = strings.ReplaceAll(v, "\r\n", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}

// intentMark は参加意向をO/X表記にします。
func intentMark(intent bool) string {
	if intent {
		return "O"
	}
	return "X"
}

// BuildListCSV はフィルタ済み申込者一覧のCSVを生成します。
// UTF-8 BOMで始まり、ヘッダー1行と申込者1件につき1行が続きます。
func BuildListCSV(list []entity.Applicant) string {
	var b strings.Builder
	b.WriteString(utf8BOM)

	headers := []string{
		"이름", "연락처", "신청일시", "참여의향", "운동빈도", "운동목적", "자세유형",
		"미주신경 운동 관련 응답", "상태",
	}
	b.WriteString(strings.Join(headers, ","))
	b.WriteString("\n")

	for i, a := range list {
		status := "미확인"
		if a.Checked {
			status = "확인완료"
		}

		fields := []string{
			a.Name,
			a.Phone,
			a.CreatedAt.Format(csvTimeLayout),
			intentMark(a.ParticipationIntent),
			Label(ExerciseFrequencyLabels, a.ExerciseFrequency),
			Label(ExercisePurposeLabels, a.ExercisePurpose),
			Label(PostureTypeLabels, a.PostureType),
			flatten(a.NerveResponse),
			status,
		}

		quoted := make([]string, len(fields))
		for j, f := range fields {
			quoted[j] = csvField(f)
		}
		b.WriteString(strings.Join(quoted, ","))
		if i < len(list)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// BuildDetailCSV は申込者1件の項目・内容2列CSVを生成します。
func BuildDetailCSV(a entity.Applicant) string {
	intent := "없음"
	if a.ParticipationIntent {
		intent = "있음"
	}

	rows := [][2]string{
		{"이름", a.Name},
		{"연락처", a.Phone},
		{"신청일시", a.CreatedAt.Format(csvTimeLayout)},
		{"참여 의향", intent},
		{"운동 빈도", Label(ExerciseFrequencyLabels, a.ExerciseFrequency)},
		{"운동 목적", Label(ExercisePurposeLabels, a.ExercisePurpose)},
		{"자세 유형", Label(PostureTypeLabels, a.PostureType)},
		{"미주신경 운동 관련 응답", flatten(a.NerveResponse)},
	}

	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString("항목,내용")
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(row[0])
		b.WriteString(",")
		b.WriteString(row[1])
	}
	return b.String()
}

// ListCSVFilename はタブ名入りの一覧エクスポートファイル名を生成します。
func ListCSVFilename(tab Tab, now time.Time) string {
	label := "전체"
	switch tab {
	case TabChecked:
		label = "확인완료"
	case TabUnchecked:
		label = "미확인"
	}
	return "신청자_목록_" + label + "_" + now.Format("2006-01-02") + ".csv"
}

// DetailCSVFilename は個別エクスポートのファイル名を生成します。
func DetailCSVFilename(a entity.Applicant, now time.Time) string {
	return "신청자_" + a.Name + "_" + now.Format("2006-01-02") + ".csv"
}
