package carddeck

import "testing"

func TestScanner_ShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"空バッファ", 0},
		{"1バイト", 1},
		{"ストライド未満", RecordStride - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewScanner(make([]byte, tt.size))
			if _, ok := scanner.Next(); ok {
				t.Error("Expected no records for a buffer shorter than one stride")
			}
		})
	}
}

func TestScanner_SkipsCorruptRecords(t *testing.T) {
	// 有効・破損・有効の3レコードを連結したバッファ
	buf := make([]byte, 0, RecordStride*3)
	buf = append(buf, makeRecord(4, "RUTH", 4, "Babe", "OF 1 L 03")...)
	buf = append(buf, makeRecord(0, "", 0, "", "")...) // 長さ0 = 非レコード
	buf = append(buf, makeRecord(4, "COBB", 2, "Ty", "OF 1 L 01")...)

	players := DecodePlayers(buf)
	if len(players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(players))
	}
	// 出力順は入力オフセット順
	if players[0].LastName != "RUTH" {
		t.Errorf("Expected first player 'RUTH', got '%s'", players[0].LastName)
	}
	if players[1].LastName != "COBB" {
		t.Errorf("Expected second player 'COBB', got '%s'", players[1].LastName)
	}
}

func TestScanner_NextResultReportsErrors(t *testing.T) {
	buf := make([]byte, 0, RecordStride*2)
	buf = append(buf, makeRecord(4, "RUTH", 4, "Babe", "OF 1 L 03")...)
	buf = append(buf, makeRecord(0, "", 0, "", "")...)

	scanner := NewScanner(buf)

	first, ok := scanner.NextResult()
	if !ok {
		t.Fatal("Expected a first result")
	}
	if first.Err != nil {
		t.Fatalf("Unexpected error for valid record: %v", first.Err)
	}
	if first.Offset != 0 {
		t.Errorf("Expected offset 0, got %d", first.Offset)
	}

	second, ok := scanner.NextResult()
	if !ok {
		t.Fatal("Expected a second result")
	}
	if second.Err == nil {
		t.Error("Expected an error for the corrupt record")
	}
	if second.Offset != RecordStride {
		t.Errorf("Expected offset %d, got %d", RecordStride, second.Offset)
	}

	if _, ok := scanner.NextResult(); ok {
		t.Error("Expected scan to end after the last record")
	}
}

func TestScanner_TrailingBytesIgnored(t *testing.T) {
	// 末尾にストライド未満の端数があっても読み越さないこと
	buf := append(makeRecord(4, "RUTH", 4, "Babe", "OF 1 L 03"), make([]byte, RecordStride/2)...)

	players := DecodePlayers(buf)
	if len(players) != 1 {
		t.Fatalf("Expected 1 player, got %d", len(players))
	}

	scanner := NewScanner(buf)
	scanner.Next()
	if remaining := scanner.Remaining(); remaining != RecordStride/2 {
		t.Errorf("Expected %d remaining bytes, got %d", RecordStride/2, remaining)
	}
}

func TestScanner_AllRecordsCorruptIsNotFailure(t *testing.T) {
	// 全レコードが破損していても空の結果が返る (失敗ではない)
	buf := make([]byte, RecordStride*3)

	players := DecodePlayers(buf)
	if len(players) != 0 {
		t.Errorf("Expected 0 players, got %d", len(players))
	}
}

func TestScanner_CustomStride(t *testing.T) {
	// ストライドを広げると後続レコードの位置が変わる
	stride := RecordStride + 10
	buf := make([]byte, 0, stride*2)
	buf = append(buf, makeRecord(4, "RUTH", 4, "Babe", "OF 1 L 03")...)
	buf = append(buf, make([]byte, 10)...)
	buf = append(buf, makeRecord(4, "COBB", 2, "Ty", "OF 1 L 01")...)
	buf = append(buf, make([]byte, 10)...)

	players := DecodePlayersWithStride(buf, stride)
	if len(players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(players))
	}
	if players[1].LastName != "COBB" {
		t.Errorf("Expected second player 'COBB', got '%s'", players[1].LastName)
	}
}
