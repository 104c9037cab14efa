package carddeck

// Result は1ストライド分の解読結果です。
// 成功時は Record が設定され、失敗時は Err に原因が入ります
type Result struct {
	// Offset はバッファ内でのレコード先頭オフセット
	Offset int

	// Record は解読済みレコード (Err が nil の場合のみ有効)
	Record *PlayerRecord

	// Err はレコード単位の解読エラー
	Err error
}

// Scanner はバッファを固定ストライドで前進しながらレコードを解読するカーソルです。
// 再スタートはできません。ストライド未満のバイトしか残っていない時点で終了し、
// バッファ終端を越えて読むことはありません
type Scanner struct {
	data   []byte
	stride int
	offset int
}

// NewScanner は標準ストライド (146バイト) のScannerを作成します
func NewScanner(data []byte) *Scanner {
	return NewScannerWithStride(data, RecordStride)
}

// NewScannerWithStride は指定ストライドのScannerを作成します。
// ストライドが1未満の場合は標準ストライドを使います
func NewScannerWithStride(data []byte, stride int) *Scanner {
	if stride < 1 {
		stride = RecordStride
	}
	return &Scanner{data: data, stride: stride}
}

// NextResult は次のストライドの解読結果を返します。
// 破損レコードも Err 付きの Result として返すため、呼び出し側で
// スキップ件数を数えることができます。走査が終わると ok=false
func (s *Scanner) NextResult() (Result, bool) {
	if s.offset+s.stride > len(s.data) {
		return Result{}, false
	}
	offset := s.offset
	slice := s.data[offset : offset+s.stride]
	s.offset += s.stride

	record, err := DecodePlayer(slice)
	return Result{Offset: offset, Record: record, Err: err}, true
}

// Next は次の有効なレコードを返します。
// 解読に失敗したレコードは黙ってスキップします。
// 1件の破損が後続の有効レコードの解読を妨げることはありません
func (s *Scanner) Next() (*PlayerRecord, bool) {
	for {
		result, ok := s.NextResult()
		if !ok {
			return nil, false
		}
		if result.Err != nil {
			continue
		}
		return result.Record, true
	}
}

// Remaining は未走査のバイト数を返します
func (s *Scanner) Remaining() int {
	return len(s.data) - s.offset
}
