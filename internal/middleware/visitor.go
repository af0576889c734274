package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// VisitorContextKey is the echo context key holding the visitor id.
	VisitorContextKey = "visitor"

	visitorSessionName = "agrogen-session"
	visitorSessionKey  = "visitor_id"
)

// Visitor assigns every browser an anonymous, stable id kept in the cookie
// session. Mounted views are owned by this id so one browser cannot drive
// another's view state. It must run after the session middleware.
func Visitor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(visitorSessionName, c)
			if err != nil {
				// A cookie signed with an old secret decodes with an error but
				// still yields a fresh session we can use.
				slog.Debug("Discarding unreadable visitor session", "error", err)
			}
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
			}

			id, _ := sess.Values[visitorSessionKey].(string)
			if id == "" {
				id = uuid.NewString()
				sess.Values[visitorSessionKey] = id
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return err
				}
			}

			c.Set(VisitorContextKey, id)
			return next(c)
		}
	}
}

// VisitorID returns the visitor id placed in the context by Visitor.
func VisitorID(c echo.Context) string {
	id, _ := c.Get(VisitorContextKey).(string)
	return id
}
