package carddeck

import "errors"

var (
	// ErrTruncatedRecord はレコードスライスが規定長より短い場合のエラー
	ErrTruncatedRecord = errors.New("レコードが規定サイズより短いです")

	// ErrInvalidNameLength は姓の長さプレフィックスが有効範囲 (1..19) 外の場合のエラー
	ErrInvalidNameLength = errors.New("姓の長さプレフィックスが有効範囲外です")

	// ErrEmptyName はデコード後の姓が空文字列になった場合のエラー
	ErrEmptyName = errors.New("デコード後の姓が空です")
)
