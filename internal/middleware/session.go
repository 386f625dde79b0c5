package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookie     = "session_id"
	sessionContextKey = "session_id"
)

// Session はセッションIDクッキーを保証するミドルウェア。
// 無ければUUIDを発行してSet-Cookieし、ハンドラからは SessionID(c) で取れる。
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string

			cookie, err := c.Cookie(sessionCookie)
			if err == nil && cookie.Value != "" {
				sid = cookie.Value
			} else {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     sessionCookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(14 * 24 * time.Hour),
				})
			}

			c.Set(sessionContextKey, sid)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionContextKey).(string)
	return sid
}
