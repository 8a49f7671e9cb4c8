package respond

import (
	"regexp"
)

var (
	// Bearerトークンのマスク用
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9-_.]+`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
