package handlers

import (
	"net/http"

	"github.com/agrogen/agrogen/internal/views"
	"github.com/labstack/echo/v4"
)

// HomeGet sends visitors to the animated sign-in screen.
func HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusFound, views.RouteAuth)
}

// HealthGet answers liveness checks.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
