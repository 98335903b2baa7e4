package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// クライアントが持ち回る匿名ID。認証ではない。
	UserIDHeader = "user-id"
	CtxUserIDKey = "user_id" // string
)

// SessionID は user-id ヘッダをcontextへ載せる。
// ヘッダが無ければこのリクエスト限りのIDを新規発行する
// （クライアントが保存しない限り次回は別カートになる）。
func SessionID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if userID == "" {
				userID = uuid.NewString()
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

// GetUserID はcontextから匿名IDを取り出す。
func GetUserID(c echo.Context) (string, bool) {
	v, ok := c.Get(CtxUserIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
