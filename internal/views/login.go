package views

import (
	"context"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/leaves"
)

// standaloneLeafCount is the number of CSS-animated leaves on the
// standalone screens.
const standaloneLeafCount = 10

// Login is the standalone login screen. Submitting only logs the form.
type Login struct {
	base

	name         string
	password     string
	showPassword bool
	rememberMe   bool
	decorations  []leaves.Decoration
}

// LoginState is an immutable render snapshot of a Login view.
type LoginState struct {
	ID           string
	Name         string
	Password     string
	ShowPassword bool
	RememberMe   bool
	Decorations  []leaves.Decoration
}

// PasswordType returns the current password input type.
func (s LoginState) PasswordType() string { return PasswordInputType(s.ShowPassword) }

func newLogin(ctx context.Context, id, visitor string, deps Deps) *Login {
	l := &Login{}
	l.init(ctx, id, KindLogin, visitor, deps)
	l.decorations = leaves.Scatter(standaloneLeafCount, deps.NewRand())
	return l
}

// SetField stores a field value.
func (l *Login) SetField(f focus.Field, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch f {
	case focus.Name:
		l.name = value
	case focus.Password:
		l.password = value
	default:
		return ErrUnknownField
	}
	return nil
}

// TogglePassword flips password visibility.
func (l *Login) TogglePassword() {
	l.mu.Lock()
	l.showPassword = !l.showPassword
	l.mu.Unlock()
}

// ToggleRemember flips the remember-me checkbox.
func (l *Login) ToggleRemember() {
	l.mu.Lock()
	l.rememberMe = !l.rememberMe
	l.mu.Unlock()
}

// Submit logs the submitted form. The password is never logged.
func (l *Login) Submit() {
	s := l.Snapshot()
	l.deps.Logger.Info("Standalone login submitted", "view", l.id, "name", s.Name, "remember_me", s.RememberMe)
}

// Snapshot returns the current render state.
func (l *Login) Snapshot() LoginState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LoginState{
		ID:           l.id,
		Name:         l.name,
		Password:     l.password,
		ShowPassword: l.showPassword,
		RememberMe:   l.rememberMe,
		Decorations:  append([]leaves.Decoration(nil), l.decorations...),
	}
}

// Close releases the view.
func (l *Login) Close() { l.shutdown() }
