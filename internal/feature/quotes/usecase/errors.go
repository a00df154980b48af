package usecase

import "errors"

var (
	// ErrSymbolRequired は銘柄が空の場合のエラーです。
	ErrSymbolRequired = errors.New("symbol is required")
	// ErrInvalidRange は未対応の期間が指定された場合のエラーです。
	ErrInvalidRange = errors.New("invalid range: must be one of 1w, 1m, 6m, 1y")
)
