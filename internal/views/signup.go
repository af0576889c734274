package views

import (
	"context"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/leaves"
)

// Signup is the standalone signup screen. Submitting only logs the form.
type Signup struct {
	base

	name         string
	email        string
	phone        string
	password     string
	showPassword bool
	decorations  []leaves.Decoration
}

// SignupState is an immutable render snapshot of a Signup view.
type SignupState struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Password     string
	ShowPassword bool
	Decorations  []leaves.Decoration
}

// PasswordType returns the current password input type.
func (s SignupState) PasswordType() string { return PasswordInputType(s.ShowPassword) }

func newSignup(ctx context.Context, id, visitor string, deps Deps) *Signup {
	s := &Signup{}
	s.init(ctx, id, KindSignup, visitor, deps)
	s.decorations = leaves.Scatter(standaloneLeafCount, deps.NewRand())
	return s
}

// SetField stores a field value.
func (s *Signup) SetField(f focus.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch f {
	case focus.Name:
		s.name = value
	case focus.Email:
		s.email = value
	case focus.Phone:
		s.phone = value
	case focus.Password:
		s.password = value
	default:
		return ErrUnknownField
	}
	return nil
}

// TogglePassword flips password visibility.
func (s *Signup) TogglePassword() {
	s.mu.Lock()
	s.showPassword = !s.showPassword
	s.mu.Unlock()
}

// Submit logs the submitted form. The password is never logged.
func (s *Signup) Submit() {
	st := s.Snapshot()
	s.deps.Logger.Info("Standalone signup submitted", "view", s.id, "name", st.Name, "email", st.Email, "phone", st.Phone)
}

// Snapshot returns the current render state.
func (s *Signup) Snapshot() SignupState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SignupState{
		ID:           s.id,
		Name:         s.name,
		Email:        s.email,
		Phone:        s.phone,
		Password:     s.password,
		ShowPassword: s.showPassword,
		Decorations:  append([]leaves.Decoration(nil), s.decorations...),
	}
}

// Close releases the view.
func (s *Signup) Close() { s.shutdown() }
