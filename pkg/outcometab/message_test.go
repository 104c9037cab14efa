package outcometab

import (
	"strings"
	"testing"
)

func TestResolveMessage(t *testing.T) {
	blob := []byte("Single\x00Double to left\x00")

	tests := []struct {
		name     string
		offset   int
		maxLen   int
		expected string
	}{
		{"ゼロバイト終端まで", 0, 100, "Single"},
		{"2番目のメッセージ", 7, 100, "Double to left"},
		{"オフセットが終端ちょうど", len(blob), 100, ""},
		{"オフセットが範囲外", 1000, 100, ""},
		{"負のオフセット", -1, 100, ""},
		{"maxLenで打ち切り", 0, 3, "Sin"},
		{"maxLenが0", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMessage(blob, tt.offset, tt.maxLen); got != tt.expected {
				t.Errorf("ResolveMessage(%d, %d) = %q; want %q", tt.offset, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestResolveMessage_NeverReadsPastBounds(t *testing.T) {
	// 終端のゼロバイトがないブロブでも終端で止まること
	blob := []byte("Triple")
	if got := ResolveMessage(blob, 0, 100); got != "Triple" {
		t.Errorf("Expected 'Triple', got %q", got)
	}

	// offset+maxLen がブロブ内に収まる場合、その先は読まない
	blob = []byte("RunnerAdvances\x00")
	if got := ResolveMessage(blob, 0, 6); got != "Runner" {
		t.Errorf("Expected 'Runner', got %q", got)
	}
}

func TestResolveMessage_SanitizesControlBytes(t *testing.T) {
	// テキストに未解明の制御バイトが混在するケース
	blob := []byte{'H', 'i', 't', 0x0A, 0x01, ' ', 'b', 'y', 0xFF, ' ', 'p', 'i', 't', 'c', 'h', 0x00}
	if got := ResolveMessage(blob, 0, 100); got != "Hit by pitch" {
		t.Errorf("Expected 'Hit by pitch', got %q", got)
	}
}

func TestResolveMessage_TrimsWhitespace(t *testing.T) {
	blob := []byte("   Ground out   \x00")
	if got := ResolveMessage(blob, 0, 100); got != "Ground out" {
		t.Errorf("Expected 'Ground out', got %q", got)
	}
}

func TestResolveMessageCP437(t *testing.T) {
	// 0xC9 は CP437 の罫線文字 '╔'、ASCIIモードでは捨てられる
	blob := []byte{0xC9, ' ', 'O', 'u', 't', 0x00}

	ascii := ResolveMessage(blob, 0, 100)
	if ascii != "Out" {
		t.Errorf("ASCII mode: expected 'Out', got %q", ascii)
	}

	cp437 := ResolveMessageCP437(blob, 0, 100)
	if !strings.HasPrefix(cp437, "╔") {
		t.Errorf("CP437 mode: expected leading '╔', got %q", cp437)
	}
	if !strings.HasSuffix(cp437, "Out") {
		t.Errorf("CP437 mode: expected trailing 'Out', got %q", cp437)
	}
}

func TestResolveMessageCP437_SameBounds(t *testing.T) {
	// CP437モードでも境界規則はASCIIモードと同じ
	blob := []byte("Fly out\x00ignored")
	if got := ResolveMessageCP437(blob, 0, 100); got != "Fly out" {
		t.Errorf("Expected 'Fly out', got %q", got)
	}
	if got := ResolveMessageCP437(blob, 1000, 100); got != "" {
		t.Errorf("Expected empty string for out-of-range offset, got %q", got)
	}
	if got := ResolveMessageCP437(blob, 0, 3); got != "Fly" {
		t.Errorf("Expected 'Fly', got %q", got)
	}
}
