// Package views holds the server-side state of every mounted screen.
//
// Each mount creates a fresh view instance owned by one visitor. A view owns
// its field values, focus flags, animation and submission state exclusively
// and guards them with its own mutex; nothing is shared between views and
// nothing outlives Unmount.
package views

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/agrogen/agrogen/internal/flow"
	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/leaves"
)

var (
	ErrViewNotFound = errors.New("views: view not found")
	ErrUnknownKind  = errors.New("views: unknown view kind")
	ErrUnknownField = errors.New("views: field not on this form")
	ErrWrongKind    = errors.New("views: operation not supported by this view")
)

// Kind identifies a screen.
type Kind string

const (
	KindAuth     Kind = "auth"
	KindLogin    Kind = "login"
	KindSignup   Kind = "signup"
	KindRecovery Kind = "recovery"
)

// Client-side routes.
const (
	RouteRoot      = "/"
	RouteAuth      = "/auth"
	RouteLogin     = "/login"
	RouteSignup    = "/signup"
	RouteRecovery  = "/forgot-password"
	RouteDashboard = "/dashboard"
)

// Route returns the path a view kind is served at.
func (k Kind) Route() string {
	switch k {
	case KindAuth:
		return RouteAuth
	case KindLogin:
		return RouteLogin
	case KindSignup:
		return RouteSignup
	case KindRecovery:
		return RouteRecovery
	}
	return ""
}

// ChangeKind classifies a pushed change.
type ChangeKind string

const (
	// ChangeFrame means the leaf field advanced.
	ChangeFrame ChangeKind = "frame"
	// ChangeStatus means the submission status changed.
	ChangeStatus ChangeKind = "status"
	// ChangeNavigate asks the client to move to Destination.
	ChangeNavigate ChangeKind = "navigate"
)

// Change describes a timer-driven state change the browser did not request.
type Change struct {
	ViewID      string     `json:"view_id"`
	Visitor     string     `json:"visitor"`
	Kind        ChangeKind `json:"kind"`
	Destination string     `json:"destination,omitempty"`
}

// Notifier delivers changes to whoever renders the view.
type Notifier interface {
	Notify(ctx context.Context, ch Change)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ch Change)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, ch Change) { f(ctx, ch) }

// View is implemented by every screen's state holder.
type View interface {
	ID() string
	Kind() Kind
	Visitor() string
	LastActive() time.Time
	// Touch records activity so the idle reaper keeps the view alive.
	Touch()
	// Close stops timers and animation. It is idempotent.
	Close()
}

// FieldEditor is implemented by views with editable inputs.
type FieldEditor interface {
	View
	SetField(f focus.Field, value string) error
}

// FocusTracker is implemented by views whose decoration reacts to focus.
type FocusTracker interface {
	View
	Focus(f focus.Field) error
	Blur(f focus.Field) error
}

// PasswordToggler is implemented by views with a show/hide password button.
type PasswordToggler interface {
	View
	TogglePassword()
}

// Watcher is implemented by views that animate only while a stream watches
// them. Watch registers one watcher and returns its release function.
type Watcher interface {
	View
	Watch() (release func())
}

// RememberToggler is implemented by views with a "remember me" checkbox.
type RememberToggler interface {
	View
	ToggleRemember()
}

// PasswordInputType returns the input type for the password field.
func PasswordInputType(show bool) string {
	if show {
		return "text"
	}
	return "password"
}

// Deps are the collaborators every view is built with.
type Deps struct {
	Notifier      Notifier
	Clock         flow.Clock
	Logger        *slog.Logger
	LeafCount     int
	LeafTick      time.Duration
	SubmitDelay   time.Duration
	RedirectDelay time.Duration
	// NewRand supplies randomness for leaf placement; nil means random seeds.
	NewRand func() *rand.Rand
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = NotifierFunc(func(context.Context, Change) {})
	}
	if d.Clock == nil {
		d.Clock = flow.RealClock{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.SubmitDelay <= 0 {
		d.SubmitDelay = flow.DefaultSubmitDelay
	}
	if d.RedirectDelay <= 0 {
		d.RedirectDelay = flow.DefaultRedirectDelay
	}
	if d.NewRand == nil {
		d.NewRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	return d
}

// base carries identity, activity tracking and lifetime shared by all views.
type base struct {
	id      string
	kind    Kind
	visitor string
	deps    Deps

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	lastActive time.Time
	closed     bool

	// watchMu serializes animator start and stop; the animator's step takes mu.
	watchMu  sync.Mutex
	watchers int
	animator *leaves.Animator
}

func (b *base) init(parent context.Context, id string, kind Kind, visitor string, deps Deps) {
	b.ctx, b.cancel = context.WithCancel(parent)
	b.id = id
	b.kind = kind
	b.visitor = visitor
	b.deps = deps
	b.lastActive = time.Now()
}

func (b *base) ID() string      { return b.id }
func (b *base) Kind() Kind      { return b.kind }
func (b *base) Visitor() string { return b.visitor }

func (b *base) LastActive() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastActive
}

func (b *base) Touch() {
	b.mu.Lock()
	b.lastActive = time.Now()
	b.mu.Unlock()
}

// shutdown marks the view closed and cancels its context. It reports false
// when the view was already closed.
func (b *base) shutdown() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	b.closed = true
	b.cancel()
	return true
}

func (b *base) notify(kind ChangeKind, destination string) {
	if b.ctx.Err() != nil {
		return
	}
	b.deps.Notifier.Notify(b.ctx, Change{ViewID: b.id, Visitor: b.visitor, Kind: kind, Destination: destination})
}

// startLeaves builds a leaf field whose animator runs while the view is
// watched.
func (b *base) startLeaves() *leaves.Field {
	field := leaves.NewField(b.deps.LeafCount, b.deps.NewRand())
	if field.Len() == 0 {
		return field
	}
	b.animator = leaves.NewAnimator(b.deps.LeafTick, func() []leaves.Leaf {
		b.mu.Lock()
		defer b.mu.Unlock()
		field.Tick()
		return field.Snapshot()
	}, func([]leaves.Leaf) {
		b.notify(ChangeFrame, "")
	})
	return field
}

// Watch starts the leaf animation for the first watcher. The returned
// function releases the watcher and stops the animation after the last one;
// calling it more than once has no further effect.
func (b *base) Watch() (release func()) {
	b.watchMu.Lock()
	b.watchers++
	if b.watchers == 1 && b.animator != nil && b.ctx.Err() == nil {
		b.animator.Start(b.ctx)
	}
	b.watchMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.watchMu.Lock()
			defer b.watchMu.Unlock()
			b.watchers--
			if b.watchers == 0 && b.animator != nil {
				b.animator.Stop()
			}
		})
	}
}

// stopLeaves halts the animation regardless of watchers.
func (b *base) stopLeaves() {
	b.watchMu.Lock()
	defer b.watchMu.Unlock()
	if b.animator != nil {
		b.animator.Stop()
	}
}

// newSubmission builds a simulated submission that notifies through the view.
func (b *base) newSubmission(destination string) *flow.Submission {
	return flow.NewSubmission(flow.Config{
		Clock:         b.deps.Clock,
		Task:          flow.Delay(b.deps.Clock, b.deps.SubmitDelay),
		RedirectDelay: b.deps.RedirectDelay,
		Destination:   destination,
	})
}

func (b *base) submissionHooks() flow.Hooks {
	return flow.Hooks{
		OnChange:   func(flow.Status) { b.notify(ChangeStatus, "") },
		OnNavigate: func(dest string) { b.notify(ChangeNavigate, dest) },
	}
}
