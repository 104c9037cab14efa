// Package outcometab は APBA Baseball for Windows の結果テーブル
// (.TBL/.MSGファイル対) を解読するためのパッケージです。
//
// .TBL ファイルはヘッダの後に4バイトリトルエンディアンのポインタ配列を持ち、
// 各ポインタは対になる .MSG ファイル内のメッセージテキストを指します。
// オフセット 0x04 には4バイトのASCIIシグネチャがあります。
// 一部のテーブルには .BLK ファイルも付属しますが、構造が未解明のため
// このパッケージでは扱いません。
//
// 基本的な使い方:
//
//	entries := outcometab.DecodeTable(tblData, msgData, outcometab.MainTableConfig())
//	for _, code := range outcometab.Codes(entries) {
//	    fmt.Println(code, entries[code].Message)
//	}
//
// ヘッダサイズやエントリ上限は実ファイルのリバースエンジニアリングで
// 求めた暫定値です。
package outcometab

import (
	"encoding/binary"
	"sort"
	"unicode/utf8"
)

const (
	// PointerSize はポインタ1個のバイト数
	PointerSize = 4

	// SentinelOffset は「未使用エントリ」を示す予約ビットパターン
	SentinelOffset = 0xFFFFFFFF

	// SignatureOffset はテーブルシグネチャのオフセット
	SignatureOffset = 0x04

	// SignatureSize はテーブルシグネチャのバイト数
	SignatureSize = 4

	// MinMessageLen はエントリとして採用する最小メッセージ文字数 (これ以下は
	// ノイズとみなして除外する暫定的な閾値)。バイト数ではなく文字数で数える
	MinMessageLen = 2

	// NumericHeaderSize は数値テーブル (B3EHNUM.TBL系) のヘッダサイズ
	NumericHeaderSize = 0x20

	// MainHeaderSize はメインテーブル (B3EHMSG.TBL系) のヘッダサイズ
	MainHeaderSize = 0x10

	// MainMaxEntries はメインテーブルのエントリ数上限。ポインタ配列の後ろに
	// 続く非ポインタデータを誤読しないための安全弁
	MainMaxEntries = 200

	// DefaultMaxMessageLen はメッセージ走査の標準上限バイト数
	DefaultMaxMessageLen = 200

	// MainMaxMessageLen はメインテーブルのメッセージ走査上限バイト数
	MainMaxMessageLen = 100
)

// Entry は解読済みの結果エントリ1件を表します
type Entry struct {
	// Code はテーブル内での通し番号 (ポインタスロットの0始まりインデックス)
	Code int

	// SourceOffset はテーブルから読み取った生のポインタ値
	SourceOffset uint32

	// Message は .MSG ファイルから解決したテキスト
	Message string
}

// TableConfig はテーブル解読の設定です。
// アルゴリズムは全テーブル共通で、ここにある値だけが異なります
type TableConfig struct {
	// HeaderSize はポインタ配列が始まるオフセット
	HeaderSize int

	// MaxEntries は走査するポインタスロット数の上限 (0 = 無制限)
	MaxEntries int

	// MaxMessageLen はメッセージ1件の走査上限バイト数
	MaxMessageLen int

	// CP437 が true の場合、メッセージバイトを IBM コードページ437 として
	// デコードします (DOS時代の罫線・拡張文字を保持する)
	CP437 bool
}

// NumericTableConfig は数値テーブル用の設定を返します
func NumericTableConfig() TableConfig {
	return TableConfig{
		HeaderSize:    NumericHeaderSize,
		MaxEntries:    0,
		MaxMessageLen: DefaultMaxMessageLen,
	}
}

// MainTableConfig はメインテーブル用の設定を返します
func MainTableConfig() TableConfig {
	return TableConfig{
		HeaderSize:    MainHeaderSize,
		MaxEntries:    MainMaxEntries,
		MaxMessageLen: MainMaxMessageLen,
	}
}

// DecodeTable はテーブルとメッセージブロブの対を解読し、
// コードからエントリへのマップを返します。
//
// センチネル値 (0xFFFFFFFF) と範囲外ポインタのスロットは黙って除外します。
// 歯抜けのテーブルはこのフォーマットの正常な状態であり、エラーではありません。
// 入力が同じであれば結果は常に同じです (副作用なし)
func DecodeTable(table, blob []byte, cfg TableConfig) map[int]Entry {
	entries := make(map[int]Entry)

	if cfg.MaxMessageLen <= 0 {
		cfg.MaxMessageLen = DefaultMaxMessageLen
	}

	offset := cfg.HeaderSize
	if offset < 0 {
		offset = 0
	}

	code := 0
	for offset+PointerSize <= len(table) {
		if cfg.MaxEntries > 0 && code >= cfg.MaxEntries {
			break
		}

		pointer := binary.LittleEndian.Uint32(table[offset : offset+PointerSize])

		switch {
		case pointer == SentinelOffset:
			// 明示的な未使用スロット
		case uint64(pointer) >= uint64(len(blob)):
			// 破損ポインタ。個別エントリの破損はこのフォーマットでは想定内
		default:
			message := resolve(blob, int(pointer), cfg.MaxMessageLen, cfg.CP437)
			if utf8.RuneCountInString(message) > MinMessageLen {
				entries[code] = Entry{
					Code:         code,
					SourceOffset: pointer,
					Message:      message,
				}
			}
		}

		code++
		offset += PointerSize
	}

	return entries
}

// Codes はエントリマップのコードを昇順で返します
func Codes(entries map[int]Entry) []int {
	codes := make([]int, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// TableSignature はテーブルのオフセット0x04にある4バイトのASCIIシグネチャを
// 返します。テーブルが短い場合は空文字列を返します
func TableSignature(table []byte) string {
	if len(table) < SignatureOffset+SignatureSize {
		return ""
	}
	return cleanASCII(table[SignatureOffset : SignatureOffset+SignatureSize])
}
