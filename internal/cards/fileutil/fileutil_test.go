package fileutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/shiroemons/go-apbacard/internal/cards/mocks"
)

func TestFromCodePage437(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"ASCIIはそのまま通す", []byte("Home Run"), "Home Run"},
		{"罫線文字", []byte{0xC9, 0xCD, 0xBB}, "╔═╗"},
		{"アクセント付き文字", []byte{0x82}, "é"},
		{"空入力", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FromCodePage437(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

func TestFindPlayersFile(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected string
	}{
		{"大文字のPLAYERS.DAT", []string{"PLAYERS.DAT"}, "PLAYERS.DAT"},
		{"小文字のplayers.dat", []string{"players.dat"}, "players.dat"},
		{"他のファイルに混ざっている場合", []string{"B3EHNUM.TBL", "PLAYERS.DAT", "readme.txt"}, "PLAYERS.DAT"},
		{"見つからない場合", []string{"B3EHNUM.TBL"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystem()
			dir := "/season"
			for _, f := range tt.files {
				fs.Files[filepath.Join(dir, f)] = []byte("x")
			}

			found, err := FindPlayersFile(fs, dir)
			if err != nil {
				t.Fatalf("FindPlayersFile failed: %v", err)
			}

			want := ""
			if tt.expected != "" {
				want = filepath.Join(dir, tt.expected)
			}
			if found != want {
				t.Errorf("FindPlayersFile = %q; want %q", found, want)
			}
		})
	}
}

func TestFindTablePairs(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	dir := "/tables"
	fs.Files[filepath.Join(dir, "B3EHNUM.TBL")] = []byte("x")
	fs.Files[filepath.Join(dir, "B3EHNUM.MSG")] = []byte("x")
	fs.Files[filepath.Join(dir, "B3EHMSG.TBL")] = []byte("x")
	fs.Files[filepath.Join(dir, "B3EHMSG.MSG")] = []byte("x")
	fs.Files[filepath.Join(dir, "B3EHMSG.BLK")] = []byte("x")
	fs.Files[filepath.Join(dir, "ORPHAN.TBL")] = []byte("x") // .MSGなし
	fs.Files[filepath.Join(dir, "readme.txt")] = []byte("x")

	pairs, err := FindTablePairs(fs, dir)
	if err != nil {
		t.Fatalf("FindTablePairs failed: %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}

	// ReadDirは名前順なのでB3EHMSGが先
	if pairs[0].Name != "B3EHMSG" {
		t.Errorf("Expected first pair 'B3EHMSG', got '%s'", pairs[0].Name)
	}
	if !pairs[0].HasBlock {
		t.Error("B3EHMSG must report its .BLK companion")
	}
	if pairs[1].Name != "B3EHNUM" {
		t.Errorf("Expected second pair 'B3EHNUM', got '%s'", pairs[1].Name)
	}
	if pairs[1].HasBlock {
		t.Error("B3EHNUM must not report a .BLK companion")
	}
}

func TestSaveJSON(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	outputPath := filepath.Join("/out", "season_decoded.json")

	value := map[string]string{"season": "1921S.WDD"}
	if err := SaveJSON(fs, outputPath, value); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	if !fs.Dirs["/out"] {
		t.Error("Expected output directory to be created")
	}

	written, ok := fs.Written[outputPath]
	if !ok {
		t.Fatal("Expected output file to be written")
	}

	var decoded map[string]string
	if err := json.Unmarshal(written, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["season"] != "1921S.WDD" {
		t.Errorf("Expected season '1921S.WDD', got '%s'", decoded["season"])
	}
}

func TestSeasonName(t *testing.T) {
	tests := []struct {
		inputPath string
		expected  string
	}{
		{filepath.Join("data", "1921S.WDD", "PLAYERS.DAT"), "1921S.WDD"},
		{filepath.Join("data", "1921S.WDD", "players.dat"), "1921S.WDD"},
		{filepath.Join("data", "TABLES"), "TABLES"},
		{"PLAYERS.DAT", "PLAYERS"},
	}

	for _, test := range tests {
		result := SeasonName(test.inputPath)
		if result != test.expected {
			t.Errorf("SeasonName(%s) = %s; want %s", test.inputPath, result, test.expected)
		}
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	if got := GenerateOutputFilename("1921S.WDD"); got != "1921S.WDD_decoded.json" {
		t.Errorf("GenerateOutputFilename = %s; want 1921S.WDD_decoded.json", got)
	}
}
