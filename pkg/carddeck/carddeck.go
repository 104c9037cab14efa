// Package carddeck は APBA Baseball for Windows の PLAYERS.DAT に含まれる
// 選手カードレコードを解読するためのパッケージです。
//
// PLAYERS.DAT は146バイト固定長レコードの連続で、ファイルヘッダはありません。
// レコード構造 (146バイト = 0x92):
//
//	0x00:        姓の長さ (1バイト)
//	0x01-0x0F:   姓 (15バイト、スペース埋め)
//	0x10:        名の長さ (1バイト)
//	0x11-0x1F:   名 (15バイト、スペース埋め)
//	0x20-0x25:   レーティング値 (6バイト、意味は未解明)
//	0x30-0x7F:   打撃チャート (80バイト、ダイス出目ごとの結果コード)
//	0x86-0x91:   記述子文字列 (守備位置、グレード、打席、カード番号)
//
// 基本的な使い方:
//
//	players := carddeck.DecodePlayers(data)
//	for _, p := range players {
//	    fmt.Println(p.LastName, p.Position)
//	}
//
// オフセットや閾値は実データのリバースエンジニアリングで求めた暫定値であり、
// 公式なフォーマット仕様に基づくものではありません。
package carddeck

import (
	"fmt"
	"strings"
)

// レコードレイアウトの定数
const (
	// RecordStride は1レコードの固定長 (146バイト = 0x92)
	RecordStride = 146

	// LastNameLenOffset は姓の長さプレフィックスのオフセット
	LastNameLenOffset = 0x00

	// LastNameOffset は姓フィールドの先頭オフセット
	LastNameOffset = 0x01

	// FirstNameLenOffset は名の長さプレフィックスのオフセット
	FirstNameLenOffset = 0x10

	// FirstNameOffset は名フィールドの先頭オフセット
	FirstNameOffset = 0x11

	// NameFieldWidth は名前フィールドの幅
	NameFieldWidth = 15

	// MaxNameLength は長さプレフィックスの有効上限 (1..19 が有効範囲)
	MaxNameLength = 19

	// RatingOffset はレーティング領域の先頭オフセット
	RatingOffset = 0x20

	// RatingSize はレーティング領域のバイト数
	RatingSize = 6

	// ChartOffset は打撃チャート領域の先頭オフセット
	ChartOffset = 0x30

	// ChartEnd は打撃チャート領域の終端オフセット (排他的)
	ChartEnd = 0x80

	// DescriptorOffset は記述子領域の先頭オフセット
	DescriptorOffset = 0x86

	// DescriptorEnd は記述子領域の終端オフセット (排他的)
	DescriptorEnd = 0x92
)

// 記述子トークンが欠けている場合のデフォルト値
const (
	// DefaultPosition は守備位置トークンがない場合のデフォルト
	DefaultPosition = "UNK"

	// DefaultGrade はグレードトークンがない場合のデフォルト
	DefaultGrade = "0"

	// DefaultBats は打席トークンがない場合のデフォルト
	DefaultBats = "R"

	// DefaultCardNumber はカード番号トークンがない場合のデフォルト
	DefaultCardNumber = "0"
)

// PlayerRecord は解読済みの選手カード1枚を表します
type PlayerRecord struct {
	// LastName は姓 (有効なレコードでは必ず非空)
	LastName string

	// FirstName は名 (元データにない場合は空文字列)
	FirstName string

	// DescriptorTokens は記述子領域を空白で分割したトークン列
	DescriptorTokens []string

	// RawDescriptor は記述子領域の生テキスト (トリム済み)
	RawDescriptor string

	// Position は守備位置 (トークン0)
	Position string

	// Grade はグレード (トークン1)
	Grade string

	// Bats は打席 (トークン2)
	Bats string

	// Throws は投球腕。独立したフィールドが未特定のため Bats と同値
	Throws string

	// CardNumber はカード番号 (トークン3)
	CardNumber string

	// RatingBytes はレーティング領域の生バイト (未解釈)
	RatingBytes [RatingSize]byte

	// ChartBytes は打撃チャート領域の生バイト (未解釈)
	ChartBytes []byte
}

// DecodePlayer は146バイトのレコードスライスを1件解読します。
// スライスが短い、長さプレフィックスが範囲外、姓が空のいずれかの場合は
// エラーを返します。入力スライスへの参照は保持しません。
func DecodePlayer(record []byte) (*PlayerRecord, error) {
	if len(record) < RecordStride {
		return nil, fmt.Errorf("%w: %dバイト (必要: %dバイト)", ErrTruncatedRecord, len(record), RecordStride)
	}

	// 姓の長さプレフィックス。0はレコード境界やパディングを示すため無効
	nameLen := int(record[LastNameLenOffset])
	if nameLen < 1 || nameLen > MaxNameLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNameLength, nameLen)
	}

	lastName := cleanASCII(record[LastNameOffset : LastNameOffset+NameFieldWidth])
	if lastName == "" {
		return nil, ErrEmptyName
	}

	// 名は任意フィールド。長さが範囲外でもレコード自体は拒否しない
	firstName := ""
	if l := int(record[FirstNameLenOffset]); l >= 1 && l <= MaxNameLength {
		firstName = cleanASCII(record[FirstNameOffset : FirstNameOffset+NameFieldWidth])
	}

	rawDescriptor := cleanASCII(record[DescriptorOffset:DescriptorEnd])
	tokens := strings.Fields(rawDescriptor)

	player := &PlayerRecord{
		LastName:         lastName,
		FirstName:        firstName,
		DescriptorTokens: tokens,
		RawDescriptor:    rawDescriptor,
		Position:         tokenOrDefault(tokens, 0, DefaultPosition),
		Grade:            tokenOrDefault(tokens, 1, DefaultGrade),
		Bats:             tokenOrDefault(tokens, 2, DefaultBats),
		CardNumber:       tokenOrDefault(tokens, 3, DefaultCardNumber),
		ChartBytes:       append([]byte(nil), record[ChartOffset:ChartEnd]...),
	}
	// 投球腕の独立フィールドは未特定のため打席と同じ値を使う
	player.Throws = player.Bats
	copy(player.RatingBytes[:], record[RatingOffset:RatingOffset+RatingSize])

	return player, nil
}

// DecodePlayers はバッファ全体を標準ストライドで走査し、
// 有効なレコードだけを入力順に集めて返します。
// 破損レコードはスキップされ、走査自体は中断されません。
func DecodePlayers(data []byte) []*PlayerRecord {
	return DecodePlayersWithStride(data, RecordStride)
}

// DecodePlayersWithStride は指定されたストライドでバッファ全体を走査します
func DecodePlayersWithStride(data []byte, stride int) []*PlayerRecord {
	var players []*PlayerRecord
	scanner := NewScannerWithStride(data, stride)
	for {
		player, ok := scanner.Next()
		if !ok {
			break
		}
		players = append(players, player)
	}
	return players
}

// tokenOrDefault はトークン列のi番目を返し、無ければデフォルト値を返します
func tokenOrDefault(tokens []string, i int, def string) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return def
}

// cleanASCII は印字可能なASCII文字だけを残してデコードし、前後の空白を除去します。
// 制御バイトや非ASCIIバイトは埋め込みデータの可能性があるため黙って捨てます
func cleanASCII(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 0x20 && c <= 0x7E {
			sb.WriteByte(c)
		}
	}
	return strings.TrimSpace(sb.String())
}
