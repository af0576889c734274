package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	appmiddleware "github.com/agrogen/agrogen/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the HTTP error handler. Expected errors
// (*echo.HTTPError) keep their status; anything else is logged with a stack
// trace and answered with a bare 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				logger.Debug("Request rejected", "status", he.Code, "error", he.Internal)
			}
			respond(c, he.Code, fmt.Sprint(he.Message))
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func respond(c echo.Context, code int, msg string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, msg)
	}
	if err != nil {
		appmiddleware.FromContext(c.Request().Context()).Warn("Failed to write error response", "error", err)
	}
}
