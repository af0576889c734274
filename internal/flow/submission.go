// Package flow models the simulated asynchronous form submission shared by
// the animated views: a loading phase standing in for a network call,
// a success phase, then a client-side navigation.
package flow

import (
	"context"
	"sync"
	"time"
)

// Default delays for the simulated submission.
const (
	DefaultSubmitDelay   = 2 * time.Second
	DefaultRedirectDelay = 1500 * time.Millisecond
)

// Status is the externally visible submission state.
type Status struct {
	Loading   bool
	Succeeded bool
	// Failure carries the task error text when a task fails. The simulated
	// delay never fails, so this stays empty in the mockup.
	Failure string
	// Navigated is set once the redirect has fired; Destination is where it
	// pointed. A late renderer uses them to replay the navigation.
	Navigated   bool
	Destination string
}

// Idle reports whether the form can be submitted.
func (s Status) Idle() bool { return !s.Loading && !s.Succeeded }

// Task stands in for the network request behind a submission.
type Task func(ctx context.Context) error

// Delay returns a Task that waits d on clock and then succeeds.
func Delay(clock Clock, d time.Duration) Task {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		t := clock.AfterFunc(d, func() { close(done) })
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		}
	}
}

// Hooks receive submission events. They are invoked without any Submission
// lock held and may call back into the Submission.
type Hooks struct {
	OnChange   func(Status)
	OnNavigate func(destination string)
}

// Config configures a Submission.
type Config struct {
	Clock         Clock
	Task          Task
	RedirectDelay time.Duration
	Destination   string
}

// Submission runs one simulated submission per view mount. Once it has
// succeeded it stays succeeded; only a remount resets it.
type Submission struct {
	clock         Clock
	task          Task
	redirectDelay time.Duration
	destination   string

	mu       sync.Mutex
	status   Status
	cancel   context.CancelFunc
	redirect Timer
	stopped  bool
}

// NewSubmission creates a Submission, filling unset fields with defaults.
func NewSubmission(cfg Config) *Submission {
	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}
	if cfg.Task == nil {
		cfg.Task = Delay(cfg.Clock, DefaultSubmitDelay)
	}
	if cfg.RedirectDelay <= 0 {
		cfg.RedirectDelay = DefaultRedirectDelay
	}
	return &Submission{
		clock:         cfg.Clock,
		task:          cfg.Task,
		redirectDelay: cfg.RedirectDelay,
		destination:   cfg.Destination,
	}
}

// Status returns the current status.
func (s *Submission) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Start sets the loading flag and runs the task in the background. It returns
// false, doing nothing, when a submission is already loading or has
// succeeded, or after Cancel.
func (s *Submission) Start(ctx context.Context, hooks Hooks) bool {
	s.mu.Lock()
	if s.stopped || !s.status.Idle() {
		s.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.status = Status{Loading: true}
	st := s.status
	s.mu.Unlock()

	notify(hooks, st)
	go s.run(ctx, hooks)
	return true
}

func (s *Submission) run(ctx context.Context, hooks Hooks) {
	err := s.task(ctx)

	s.mu.Lock()
	if ctx.Err() != nil || s.stopped {
		// Cancelled: the view is gone, nobody is left to notify.
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.status = Status{Failure: err.Error()}
		st := s.status
		s.mu.Unlock()
		notify(hooks, st)
		return
	}

	s.status = Status{Succeeded: true}
	st := s.status
	s.redirect = s.clock.AfterFunc(s.redirectDelay, func() {
		s.mu.Lock()
		live := !s.stopped && ctx.Err() == nil
		if live {
			s.status.Navigated = true
			s.status.Destination = s.destination
		}
		s.mu.Unlock()
		if live && hooks.OnNavigate != nil {
			hooks.OnNavigate(s.destination)
		}
	})
	s.mu.Unlock()

	notify(hooks, st)
}

// Cancel stops any pending task or redirect. Subsequent Starts are ignored.
func (s *Submission) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	if s.redirect != nil {
		s.redirect.Stop()
	}
}

func notify(h Hooks, st Status) {
	if h.OnChange != nil {
		h.OnChange(st)
	}
}
