package handlers

import (
	"fmt"
	"net/http"

	"github.com/agrogen/agrogen/internal/middleware"
	"github.com/agrogen/agrogen/internal/view"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web/src/templates/layouts"
	"github.com/agrogen/agrogen/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// PageHandler mounts a fresh view for every screen request and renders it.
type PageHandler struct {
	store *views.Store
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(store *views.Store) *PageHandler {
	return &PageHandler{store: store}
}

// AuthGet renders the combined login/signup screen (GET /auth).
func (h *PageHandler) AuthGet(c echo.Context) error {
	v, err := h.mount(c, views.KindAuth)
	if err != nil {
		return err
	}
	return renderPage(c, "Welcome", pages.Auth(v.(*views.Auth).Snapshot()))
}

// LoginGet renders the standalone login screen (GET /login).
func (h *PageHandler) LoginGet(c echo.Context) error {
	v, err := h.mount(c, views.KindLogin)
	if err != nil {
		return err
	}
	return renderPage(c, "Login", pages.Login(v.(*views.Login).Snapshot()))
}

// SignupGet renders the standalone signup screen (GET /signup).
func (h *PageHandler) SignupGet(c echo.Context) error {
	v, err := h.mount(c, views.KindSignup)
	if err != nil {
		return err
	}
	return renderPage(c, "Sign Up", pages.Signup(v.(*views.Signup).Snapshot()))
}

// ForgotPasswordGet renders the password reset request screen
// (GET /forgot-password).
func (h *PageHandler) ForgotPasswordGet(c echo.Context) error {
	v, err := h.mount(c, views.KindRecovery)
	if err != nil {
		return err
	}
	return renderPage(c, "Forgot Password", pages.Recovery(v.(*views.Recovery).Snapshot()))
}

// DashboardGet renders the placeholder landing page.
func (h *PageHandler) DashboardGet(c echo.Context) error {
	return renderPage(c, "Dashboard", pages.Dashboard())
}

func (h *PageHandler) mount(c echo.Context, kind views.Kind) (views.View, error) {
	v, err := h.store.Mount(kind, middleware.VisitorID(c))
	if err != nil {
		return nil, fmt.Errorf("mount %s view: %w", kind, err)
	}
	middleware.FromContext(c.Request().Context()).Debug("Rendering view", "view", v.ID(), "kind", kind)
	return v, nil
}

// renderPage wraps gomponents page content in the templ layout.
func renderPage(c echo.Context, title string, content gomponents.Node) error {
	pageContent := view.AdaptGomponentToTempl(content)
	return c.Render(http.StatusOK, "", layouts.Base(title, pageContent))
}
