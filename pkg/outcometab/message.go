package outcometab

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// ResolveMessage はブロブ内の offset から始まるメッセージテキストを取り出します。
// ゼロバイト、maxLen バイト走査、ブロブ終端のいずれか早いところで打ち切り、
// offset+maxLen を越えて読むことはありません。
// 印字可能なASCII文字とスペース以外のバイトは捨てた上で前後の空白を除去します。
// offset がブロブの範囲外なら空文字列を返します
func ResolveMessage(blob []byte, offset, maxLen int) string {
	return resolve(blob, offset, maxLen, false)
}

// ResolveMessageCP437 は ResolveMessage と同じ境界規則で走査し、
// バイトを IBM コードページ437 としてデコードします。
// DOS由来の罫線や拡張文字が捨てられずに残ります
func ResolveMessageCP437(blob []byte, offset, maxLen int) string {
	return resolve(blob, offset, maxLen, true)
}

// resolve は境界付きの終端探索と文字種フィルタを行う共通実装です
func resolve(blob []byte, offset, maxLen int, cp437 bool) string {
	if offset < 0 || offset >= len(blob) || maxLen <= 0 {
		return ""
	}

	// 終端 (ゼロバイト / maxLen / ブロブ終端) を探す
	limit := offset + maxLen
	if limit > len(blob) {
		limit = len(blob)
	}
	end := offset
	for end < limit && blob[end] != 0 {
		end++
	}

	// ブロブにはテキストと未解明の制御バイトが混在するため、
	// 印字可能な文字だけを残す
	var sb strings.Builder
	for _, b := range blob[offset:end] {
		if cp437 {
			r := charmap.CodePage437.DecodeByte(b)
			if unicode.IsPrint(r) || r == ' ' {
				sb.WriteRune(r)
			}
			continue
		}
		if b >= 0x20 && b <= 0x7E {
			sb.WriteByte(b)
		}
	}

	return strings.TrimSpace(sb.String())
}

// cleanASCII は印字可能なASCII文字だけを残し、前後の空白を除去します
func cleanASCII(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 0x20 && c <= 0x7E {
			sb.WriteByte(c)
		}
	}
	return strings.TrimSpace(sb.String())
}
