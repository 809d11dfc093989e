package usecase

// カテゴリーコードから表示用ラベルへの静的対応表。
// 画面表示とCSVエクスポートの両方で使われ、未知のコード
// （「기타」選択時の自由入力）はそのまま表示されます。
var (
	// ExerciseFrequencyLabels は運動頻度コードのラベルです。
	ExerciseFrequencyLabels = map[string]string{
		"weekly1": "주 1회",
		"weekly3": "주 3회",
		"daily":   "매일",
		"none":    "안함",
	}

	// ExercisePurposeLabels は運動目的コードのラベルです。
	ExercisePurposeLabels = map[string]string{
		"appearance": "외모 레벨업",
		"health":     "건강 증진",
		"hobby":      "재미/취미",
		"show":       "과시",
		"other":      "기타",
	}

	// PostureTypeLabels は姿勢タイプコードのラベルです。
	PostureTypeLabels = map[string]string{
		"ideal": "이상적 자세",
		"typeA": "A타입",
		"typeB": "B타입",
		"typeC": "C타입",
		"typeD": "D타입",
		"typeE": "E타입",
		"other": "기타",
	}
)

// Label は対応表からラベルを引き、未知のコードはそのまま返します。
func Label(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}
