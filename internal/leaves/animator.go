package leaves

import (
	"context"
	"sync"
	"time"
)

// FrameFunc receives the field state after each tick.
type FrameFunc func(frame []Leaf)

// Animator advances a Field on a fixed interval in its own goroutine.
type Animator struct {
	interval time.Duration
	step     func() []Leaf
	onFrame  FrameFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewAnimator creates an animator. step advances the field and returns the
// new frame; it is supplied by the owner so the owner can hold its own lock
// around the Field.
func NewAnimator(interval time.Duration, step func() []Leaf, onFrame FrameFunc) *Animator {
	return &Animator{interval: interval, step: step, onFrame: onFrame}
}

// Start begins ticking until ctx is cancelled or Stop is called. Calling
// Start on a running animator is a no-op.
func (a *Animator) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running || a.interval <= 0 {
		return
	}

	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan struct{})
	a.running = true
	go a.run(ctx, a.done)
}

func (a *Animator) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame := a.step()
			if a.onFrame != nil {
				a.onFrame(frame)
			}
		}
	}
}

// Stop halts the animator and waits for its goroutine to exit.
func (a *Animator) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.cancel()
	done := a.done
	a.running = false
	a.mu.Unlock()

	<-done
}

// Running reports whether the animator goroutine is active.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
