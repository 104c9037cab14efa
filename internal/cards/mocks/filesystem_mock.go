// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shiroemons/go-apbacard/internal/cards/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files      map[string][]byte
	Dirs       map[string]bool
	WorkingDir string
	Error      error

	// Written はWriteFileで書き込まれた内容を記録します
	Written map[string][]byte
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:      make(map[string][]byte),
		Dirs:       make(map[string]bool),
		WorkingDir: "/test/dir",
		Written:    make(map[string][]byte),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	_, exists := fs.Files[filename]
	return exists
}

// ReadFile はファイルを読み込みます
func (fs *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found: " + filename)
	}
	return data, nil
}

// WriteFile はファイルを書き込みます
func (fs *MockFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	if fs.Error != nil {
		return fs.Error
	}
	fs.Files[filename] = data
	fs.Written[filename] = data
	return nil
}

// MkdirAll はディレクトリを作成します
func (fs *MockFileSystem) MkdirAll(path string, perm uint32) error {
	if fs.Error != nil {
		return fs.Error
	}
	fs.Dirs[path] = true
	return nil
}

// ReadDir はディレクトリを読み込みます。
// Filesに登録されたパスのうち、指定ディレクトリ直下のものを名前順で返します
func (fs *MockFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}

	seen := make(map[string]bool)
	var names []string
	for path := range fs.Files {
		if filepath.Dir(path) != dirname {
			continue
		}
		name := filepath.Base(path)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for dir := range fs.Dirs {
		if filepath.Dir(dir) != dirname {
			continue
		}
		name := filepath.Base(dir)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if len(names) == 0 && !fs.Dirs[dirname] {
		// 登録されたファイルが1つもないディレクトリは存在しない扱い
		hasPrefix := false
		for path := range fs.Files {
			if strings.HasPrefix(path, dirname+string(filepath.Separator)) {
				hasPrefix = true
				break
			}
		}
		if !hasPrefix {
			return nil, errors.New("directory not found: " + dirname)
		}
	}

	sort.Strings(names)
	entries := make([]interfaces.DirEntry, len(names))
	for i, name := range names {
		entries[i] = &mockDirEntry{name: name, isDir: fs.Dirs[filepath.Join(dirname, name)]}
	}
	return entries, nil
}

// Getwd は現在の作業ディレクトリを取得します
func (fs *MockFileSystem) Getwd() (string, error) {
	if fs.Error != nil {
		return "", fs.Error
	}
	return fs.WorkingDir, nil
}

// mockDirEntry はテスト用のディレクトリエントリ
type mockDirEntry struct {
	name  string
	isDir bool
}

// Name はエントリ名を返します
func (de *mockDirEntry) Name() string {
	return de.name
}

// IsDir はディレクトリかどうかを返します
func (de *mockDirEntry) IsDir() bool {
	return de.isDir
}
