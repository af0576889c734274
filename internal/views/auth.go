package views

import (
	"context"

	"github.com/agrogen/agrogen/internal/flow"
	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/leaves"
)

// Auth is the combined, animated login/signup screen. Both panels share one
// instance, so switching panels keeps every value typed so far.
type Auth struct {
	base

	email        string
	password     string
	name         string
	phone        string
	showPassword bool
	rememberMe   bool
	showSignUp   bool
	focus        focus.Flags

	field      *leaves.Field
	submission *flow.Submission
}

// AuthState is an immutable render snapshot of an Auth view.
type AuthState struct {
	ID           string
	Email        string
	Password     string
	Name         string
	Phone        string
	ShowPassword bool
	RememberMe   bool
	ShowSignUp   bool
	Focus        focus.Flags
	Icon         focus.Decoration
	Leaves       []leaves.Leaf
	Status       flow.Status
}

// PasswordType returns the current password input type.
func (s AuthState) PasswordType() string { return PasswordInputType(s.ShowPassword) }

func newAuth(ctx context.Context, id, visitor string, deps Deps) *Auth {
	a := &Auth{}
	a.init(ctx, id, KindAuth, visitor, deps)
	a.field = a.startLeaves()
	a.submission = a.newSubmission(RouteDashboard)
	return a
}

// SetField stores a field value.
func (a *Auth) SetField(f focus.Field, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch f {
	case focus.Email:
		a.email = value
	case focus.Password:
		a.password = value
	case focus.Name:
		a.name = value
	case focus.Phone:
		a.phone = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Focus sets the focus flag for f.
func (a *Auth) Focus(f focus.Field) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := focus.ParseField(string(f)); !ok {
		return ErrUnknownField
	}
	a.focus.Focus(f)
	return nil
}

// Blur clears the focus flag for f.
func (a *Auth) Blur(f focus.Field) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := focus.ParseField(string(f)); !ok {
		return ErrUnknownField
	}
	a.focus.Blur(f)
	return nil
}

// TogglePassword flips password visibility.
func (a *Auth) TogglePassword() {
	a.mu.Lock()
	a.showPassword = !a.showPassword
	a.mu.Unlock()
}

// ToggleRemember flips the remember-me checkbox.
func (a *Auth) ToggleRemember() {
	a.mu.Lock()
	a.rememberMe = !a.rememberMe
	a.mu.Unlock()
}

// ShowSignUpPanel switches between the signup (true) and login panels.
func (a *Auth) ShowSignUpPanel(show bool) {
	a.mu.Lock()
	a.showSignUp = show
	a.mu.Unlock()
}

// SubmitLogin starts the simulated login. It returns false if a submission
// is already in flight or has completed.
func (a *Auth) SubmitLogin() bool {
	a.deps.Logger.Info("Login submitted", "view", a.id, "email", a.Snapshot().Email)
	return a.submission.Start(a.ctx, a.submissionHooks())
}

// SubmitSignUp starts the simulated signup; it shares the login submission
// so the two panels cannot run concurrently.
func (a *Auth) SubmitSignUp() bool {
	a.deps.Logger.Info("Signup submitted", "view", a.id, "name", a.Snapshot().Name)
	return a.submission.Start(a.ctx, a.submissionHooks())
}

// Snapshot returns the current render state.
func (a *Auth) Snapshot() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AuthState{
		ID:           a.id,
		Email:        a.email,
		Password:     a.password,
		Name:         a.name,
		Phone:        a.phone,
		ShowPassword: a.showPassword,
		RememberMe:   a.rememberMe,
		ShowSignUp:   a.showSignUp,
		Focus:        a.focus.Clone(),
		Icon:         focus.Derive(a.focus),
		Leaves:       a.field.Snapshot(),
		Status:       a.submission.Status(),
	}
}

// Close stops the leaf animation and cancels any pending submission.
func (a *Auth) Close() {
	if !a.shutdown() {
		return
	}
	a.stopLeaves()
	a.submission.Cancel()
}
