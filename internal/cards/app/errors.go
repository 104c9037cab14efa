package app

import "errors"

var (
	// ErrNoInput は入力ファイルが指定も検出もされなかった場合のエラー
	ErrNoInput = errors.New("PLAYERS.DATもテーブルディレクトリも指定されていません")

	// ErrPlayersNotFound は指定された選手ファイルが存在しない場合のエラー
	ErrPlayersNotFound = errors.New("指定された選手ファイルが見つかりません")

	// ErrReadPlayers は選手ファイルの読み込みに失敗した場合のエラー
	ErrReadPlayers = errors.New("選手ファイルの読み込みに失敗しました")

	// ErrFindTables はテーブルファイルの検索に失敗した場合のエラー
	ErrFindTables = errors.New("テーブルファイルの検索に失敗しました")

	// ErrReadTable は.TBLファイルの読み込みに失敗した場合のエラー
	ErrReadTable = errors.New(".TBLファイルの読み込みに失敗しました")

	// ErrReadMessages は.MSGファイルの読み込みに失敗した場合のエラー
	ErrReadMessages = errors.New(".MSGファイルの読み込みに失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
