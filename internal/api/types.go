// Package api はHTTPレスポンスで共通に使う型を定義します。
package api

// ErrorResponse はエラー時のレスポンスボディです。
// Error は利用者向けの短い説明、Message は原因となったエラーの詳細です。
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
