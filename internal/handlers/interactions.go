package handlers

import (
	"errors"
	"net/http"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/middleware"
	"github.com/agrogen/agrogen/internal/view/dto/auth"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web/src/templates/components"
	"github.com/agrogen/agrogen/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// ViewHandler applies browser events to mounted views. Every endpoint is
// scoped to a view owned by the calling visitor.
type ViewHandler struct {
	store *views.Store
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(store *views.Store) *ViewHandler {
	return &ViewHandler{store: store}
}

var (
	errViewNotFound = echo.NewHTTPError(http.StatusNotFound, "view not found")
	errUnsupported  = echo.NewHTTPError(http.StatusNotFound, "action not available on this view")
)

func (h *ViewHandler) view(c echo.Context) (views.View, error) {
	v, err := h.store.Get(c.Param("id"), middleware.VisitorID(c))
	if err != nil {
		return nil, errViewNotFound
	}
	return v, nil
}

func parseField(name string) (focus.Field, error) {
	f, ok := focus.ParseField(name)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown field")
	}
	return f, nil
}

// Input stores the value of one field (POST /views/:id/input). The value
// is posted under the field's own name.
func (h *ViewHandler) Input(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	var req auth.FieldRequest
	if err := bindForm(c, &req); err != nil {
		return err
	}
	f, err := parseField(req.Field)
	if err != nil {
		return err
	}
	editor, ok := v.(views.FieldEditor)
	if !ok {
		return errUnsupported
	}
	if err := editor.SetField(f, c.FormValue(string(f))); err != nil {
		return fieldError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Focus marks a field focused and answers with the moved header leaf
// (POST /views/:id/focus).
func (h *ViewHandler) Focus(c echo.Context) error {
	return h.trackFocus(c, views.FocusTracker.Focus)
}

// Blur clears a field's focus flag (POST /views/:id/blur).
func (h *ViewHandler) Blur(c echo.Context) error {
	return h.trackFocus(c, views.FocusTracker.Blur)
}

func (h *ViewHandler) trackFocus(c echo.Context, apply func(views.FocusTracker, focus.Field) error) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	var req auth.FieldRequest
	if err := bindForm(c, &req); err != nil {
		return err
	}
	f, err := parseField(req.Field)
	if err != nil {
		return err
	}
	tracker, ok := v.(views.FocusTracker)
	if !ok {
		return errUnsupported
	}
	if err := apply(tracker, f); err != nil {
		return fieldError(err)
	}

	var icon focus.Decoration
	switch t := v.(type) {
	case *views.Auth:
		icon = t.Snapshot().Icon
	case *views.Recovery:
		icon = t.Snapshot().Icon
	}
	return c.Render(http.StatusOK, "", components.FocusLeaf(icon))
}

// PasswordVisibility flips the password input type and re-renders the
// password group (POST /views/:id/password-visibility).
func (h *ViewHandler) PasswordVisibility(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	toggler, ok := v.(views.PasswordToggler)
	if !ok {
		return errUnsupported
	}
	toggler.TogglePassword()

	switch t := v.(type) {
	case *views.Auth:
		return c.Render(http.StatusOK, "", pages.AuthPassword(t.Snapshot()))
	case *views.Login:
		return c.Render(http.StatusOK, "", pages.LoginPassword(t.Snapshot()))
	case *views.Signup:
		return c.Render(http.StatusOK, "", pages.SignupPassword(t.Snapshot()))
	}
	return c.NoContent(http.StatusNoContent)
}

// Remember flips the remember-me flag (POST /views/:id/remember).
func (h *ViewHandler) Remember(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	toggler, ok := v.(views.RememberToggler)
	if !ok {
		return errUnsupported
	}
	toggler.ToggleRemember()
	return c.NoContent(http.StatusNoContent)
}

// Panel switches the combined screen between login and signup
// (POST /views/:id/panel).
func (h *ViewHandler) Panel(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	a, ok := v.(*views.Auth)
	if !ok {
		return errUnsupported
	}
	var req auth.PanelRequest
	if err := bindForm(c, &req); err != nil {
		return err
	}
	a.ShowSignUpPanel(req.Panel == "signup")
	return c.Render(http.StatusOK, "", pages.AuthCard(a.Snapshot(), false))
}

// Submit handles every form submission (POST /views/:id/submit). The posted
// values are copied into the view before it acts on them.
func (h *ViewHandler) Submit(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	var req auth.SubmitRequest
	if err := bindForm(c, &req); err != nil {
		return err
	}

	switch t := v.(type) {
	case *views.Auth:
		return h.submitAuth(c, t, req.Form)
	case *views.Login:
		if req.Form != "login" {
			return errUnsupported
		}
		var form auth.StandaloneLoginRequest
		if err := bindForm(c, &form); err != nil {
			return err
		}
		if err := setFields(t, map[focus.Field]string{focus.Name: form.Name, focus.Password: form.Password}); err != nil {
			return err
		}
		t.Submit()
		return c.NoContent(http.StatusNoContent)
	case *views.Signup:
		if req.Form != "signup" {
			return errUnsupported
		}
		var form auth.StandaloneSignupRequest
		if err := bindForm(c, &form); err != nil {
			return err
		}
		err := setFields(t, map[focus.Field]string{
			focus.Name: form.Name, focus.Email: form.Email, focus.Phone: form.Phone, focus.Password: form.Password,
		})
		if err != nil {
			return err
		}
		t.Submit()
		return c.NoContent(http.StatusNoContent)
	case *views.Recovery:
		if req.Form != "reset" {
			return errUnsupported
		}
		var form auth.ResetRequest
		if err := bindForm(c, &form); err != nil {
			if isUnprocessable(err) {
				return c.Render(http.StatusUnprocessableEntity, "", pages.RecoveryCard(t.Snapshot()))
			}
			return err
		}
		if err := setFields(t, map[focus.Field]string{focus.Email: form.Email}); err != nil {
			return err
		}
		t.Submit()
		return c.Render(http.StatusOK, "", pages.RecoveryCard(t.Snapshot()))
	}
	return errUnsupported
}

func (h *ViewHandler) submitAuth(c echo.Context, a *views.Auth, form string) error {
	var fields map[focus.Field]string
	switch form {
	case "login":
		var req auth.LoginRequest
		if err := bindForm(c, &req); err != nil {
			return h.rejectAuth(c, a, err)
		}
		fields = map[focus.Field]string{focus.Email: req.Email, focus.Password: req.Password}
	case "signup":
		var req auth.SignUpRequest
		if err := bindForm(c, &req); err != nil {
			return h.rejectAuth(c, a, err)
		}
		fields = map[focus.Field]string{focus.Name: req.Name, focus.Phone: req.Phone}
	default:
		return errUnsupported
	}

	if err := setFields(a, fields); err != nil {
		return err
	}
	if form == "signup" {
		a.SubmitSignUp()
	} else {
		a.SubmitLogin()
	}
	return c.Render(http.StatusOK, "", pages.AuthCard(a.Snapshot(), false))
}

// rejectAuth re-renders the card with a 422 when a required field is
// missing.
func (h *ViewHandler) rejectAuth(c echo.Context, a *views.Auth, err error) error {
	if !isUnprocessable(err) {
		return err
	}
	middleware.FromContext(c.Request().Context()).Debug("Rejected incomplete form", "view", a.ID(), "error", err)
	return c.Render(http.StatusUnprocessableEntity, "", pages.AuthCard(a.Snapshot(), false))
}

// Reset returns the forgot-password screen to its form
// (POST /views/:id/reset).
func (h *ViewHandler) Reset(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	r, ok := v.(*views.Recovery)
	if !ok {
		return errUnsupported
	}
	r.TryAnother()
	return c.Render(http.StatusOK, "", pages.RecoveryCard(r.Snapshot()))
}

// Unmount releases a view when its page goes away
// (DELETE /views/:id and POST /views/:id/unmount).
func (h *ViewHandler) Unmount(c echo.Context) error {
	if err := h.store.Unmount(c.Param("id"), middleware.VisitorID(c)); err != nil {
		return errViewNotFound
	}
	return c.NoContent(http.StatusNoContent)
}

func setFields(editor views.FieldEditor, fields map[focus.Field]string) error {
	for f, value := range fields {
		if err := editor.SetField(f, value); err != nil {
			return fieldError(err)
		}
	}
	return nil
}

func fieldError(err error) error {
	if errors.Is(err, views.ErrUnknownField) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "field not on this form").SetInternal(err)
	}
	return err
}
