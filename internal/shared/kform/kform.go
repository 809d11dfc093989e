// Package kform は韓国語の申込フォーム入力（氏名・電話番号）の
// 正規化とバリデーションを提供します。
// クライアントのキー入力段階とサーバーの提出段階で同じ規則を使います。
package kform

import "strings"

const phonePrefix = "010"

// stripNonDigits は数字以外の文字をすべて取り除きます。
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone は電話番号からハイフン等を取り除き、数字のみを返します。
func NormalizePhone(s string) string {
	return stripNonDigits(s)
}

// ValidPhone は正規化後に010で始まる11桁になる電話番号のみを許可します。
func ValidPhone(s string) bool {
	digits := stripNonDigits(s)
	return len(digits) == 11 && strings.HasPrefix(digits, phonePrefix)
}

// FormatPhone はキー入力ごとの電話番号整形を行います。
// 数字のみを抽出し、3-4-4のハイフン区切りで返します。
// 11桁を超える入力、または010で始まり得ない入力は拒否され、
// 呼び出し側は直前の値を保持します（okがfalse）。
func FormatPhone(input string) (string, bool) {
	digits := stripNonDigits(input)

	if len(digits) > 11 {
		return "", false
	}

	// 入力途中でも010の接頭辞から外れた時点で拒否する
	if len(digits) > 0 {
		if len(digits) < len(phonePrefix) {
			if !strings.HasPrefix(phonePrefix, digits) {
				return "", false
			}
		} else if !strings.HasPrefix(digits, phonePrefix) {
			return "", false
		}
	}

	formatted := digits
	if len(digits) > 3 {
		formatted = digits[:3] + "-" + digits[3:]
	}
	if len(digits) > 7 {
		formatted = formatted[:8] + "-" + formatted[8:]
	}
	return formatted, true
}

// isHangulJamo は子音(ㄱ-ㅎ)・母音(ㅏ-ㅣ)の字母を判定します。
func isHangulJamo(r rune) bool {
	return (r >= 'ㄱ' && r <= 'ㅎ') || (r >= 'ㅏ' && r <= 'ㅣ')
}

// isHangulSyllable は完成形音節(가-힣)を判定します。
func isHangulSyllable(r rune) bool {
	return r >= '가' && r <= '힣'
}

// StripNonHangul はハングル（字母・完成形音節）以外の文字をすべて取り除きます。
// 氏名フィールドのキー入力ごとに適用され、入力途中の字母は許容されます。
func StripNonHangul(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isHangulJamo(r) || isHangulSyllable(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidName は完成形ハングル音節のみで構成された空でない氏名を許可します。
// 入力途中にのみ許容される字母（ㄱ、ㅏなど）は提出段階で拒否されます。
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isHangulSyllable(r) {
			return false
		}
	}
	return true
}
