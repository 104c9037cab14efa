// Package fileutil はデータファイルの検索と出力のユーティリティを提供します
package fileutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-apbacard/internal/cards/interfaces"
)

var (
	// PlayersFilePattern はPLAYERS.DATファイルのパターン (大文字小文字を無視)
	PlayersFilePattern = regexp.MustCompile(`(?i)^players\.dat$`)

	// TableFilePattern は.TBLファイルのパターン (大文字小文字を無視)
	TableFilePattern = regexp.MustCompile(`(?i)^[a-z0-9_]+\.tbl$`)
)

// FromCodePage437 はIBM コードページ437からUTF-8に変換します
func FromCodePage437(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	transformer := charmap.CodePage437.NewDecoder()
	ret, err := io.ReadAll(transform.NewReader(reader, transformer))
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

// TablePair は.TBLファイルと対になる.MSGファイルの組です
type TablePair struct {
	// Name はテーブル名 (拡張子なしのベース名、例: B3EHNUM)
	Name string

	// TBLPath は.TBLファイルのパス
	TBLPath string

	// MSGPath は対になる.MSGファイルのパス
	MSGPath string

	// HasBlock は.BLKファイルの有無。構造が未解明のため存在だけを記録する
	HasBlock bool
}

// FindPlayersFile はディレクトリ内からPLAYERS.DATを検索します。
// 見つからない場合は空文字列を返します (エラーではありません)
func FindPlayersFile(fs interfaces.FileSystem, dir string) (string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if PlayersFilePattern.MatchString(entry.Name()) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", nil
}

// FindTablePairs はディレクトリ内の.TBLファイルを検索し、同名の.MSGファイルと
// 対にして返します。.MSGが欠けている.TBLは除外します。
// 結果は検出順 (ReadDirの辞書順) です
func FindTablePairs(fs interfaces.FileSystem, dir string) ([]TablePair, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	// .MSGと.BLKはベース名 (小文字化) で引けるようにしておく
	msgFiles := make(map[string]string)
	blkFiles := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		switch strings.ToLower(filepath.Ext(name)) {
		case ".msg":
			msgFiles[base] = filepath.Join(dir, name)
		case ".blk":
			blkFiles[base] = true
		}
	}

	var pairs []TablePair
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !TableFilePattern.MatchString(name) {
			continue
		}

		base := strings.TrimSuffix(name, filepath.Ext(name))
		key := strings.ToLower(base)
		msgPath, ok := msgFiles[key]
		if !ok {
			// 対になる.MSGがないテーブルは解読できない
			continue
		}

		pairs = append(pairs, TablePair{
			Name:     base,
			TBLPath:  filepath.Join(dir, name),
			MSGPath:  msgPath,
			HasBlock: blkFiles[key],
		})
	}

	return pairs, nil
}

// SaveJSON は値をインデント付きJSONに変換してファイルに保存します。
// 出力先ディレクトリが存在しない場合は作成します
func SaveJSON(fs interfaces.FileSystem, outputPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeJSON, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	return nil
}

// SeasonName は入力パスからシーズン名を導出します。
// PLAYERS.DATの場合は親ディレクトリ名 (例: 1921S.WDD)、
// それ以外はベース名 (拡張子なし) を返します
func SeasonName(inputPath string) string {
	base := filepath.Base(inputPath)
	if PlayersFilePattern.MatchString(base) {
		parent := filepath.Base(filepath.Dir(inputPath))
		if parent != "." && parent != string(filepath.Separator) {
			return parent
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GenerateOutputFilename はシーズン名から出力ファイル名を生成します
func GenerateOutputFilename(season string) string {
	return fmt.Sprintf("%s_decoded.json", season)
}
