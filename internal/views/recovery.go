package views

import (
	"context"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/leaves"
)

// Recovery is the forgot-password screen. It has a single email field whose
// focus drives the decorative leaf, and a submitted flag that swaps the form
// for a "check your email" panel.
type Recovery struct {
	base

	email     string
	focus     focus.Flags
	submitted bool

	field *leaves.Field
}

// RecoveryState is an immutable render snapshot of a Recovery view.
type RecoveryState struct {
	ID        string
	Email     string
	Focused   bool
	Icon      focus.Decoration
	Submitted bool
	Leaves    []leaves.Leaf
}

func newRecovery(ctx context.Context, id, visitor string, deps Deps) *Recovery {
	r := &Recovery{}
	r.init(ctx, id, KindRecovery, visitor, deps)
	r.field = r.startLeaves()
	return r
}

// SetField stores the email value.
func (r *Recovery) SetField(f focus.Field, value string) error {
	if f != focus.Email {
		return ErrUnknownField
	}
	r.mu.Lock()
	r.email = value
	r.mu.Unlock()
	return nil
}

// Focus sets the email focus flag.
func (r *Recovery) Focus(f focus.Field) error {
	if f != focus.Email {
		return ErrUnknownField
	}
	r.mu.Lock()
	r.focus.Focus(f)
	r.mu.Unlock()
	return nil
}

// Blur clears the email focus flag.
func (r *Recovery) Blur(f focus.Field) error {
	if f != focus.Email {
		return ErrUnknownField
	}
	r.mu.Lock()
	r.focus.Blur(f)
	r.mu.Unlock()
	return nil
}

// Submit logs the email and shows the confirmation panel.
func (r *Recovery) Submit() {
	r.mu.Lock()
	r.submitted = true
	email := r.email
	r.mu.Unlock()
	r.deps.Logger.Info("Password reset requested", "view", r.id, "email", email)
}

// TryAnother returns to the email form, keeping the typed address.
func (r *Recovery) TryAnother() {
	r.mu.Lock()
	r.submitted = false
	r.mu.Unlock()
}

// Snapshot returns the current render state.
func (r *Recovery) Snapshot() RecoveryState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RecoveryState{
		ID:        r.id,
		Email:     r.email,
		Focused:   r.focus.Has(focus.Email),
		Icon:      focus.Derive(r.focus),
		Submitted: r.submitted,
		Leaves:    r.field.Snapshot(),
	}
}

// Close stops the leaf animation.
func (r *Recovery) Close() {
	if !r.shutdown() {
		return
	}
	r.stopLeaves()
}
