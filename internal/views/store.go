package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store tracks mounted views. Views are discarded on Unmount, when they sit
// idle longer than the TTL, or when the store closes.
type Store struct {
	deps Deps
	ttl  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	views map[string]View
}

// NewStore creates an empty store. A ttl of zero disables idle reaping.
func NewStore(deps Deps, ttl time.Duration) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		deps:   deps.withDefaults(),
		ttl:    ttl,
		ctx:    ctx,
		cancel: cancel,
		views:  make(map[string]View),
	}
}

// Mount creates a new view instance of kind owned by visitor.
func (s *Store) Mount(kind Kind, visitor string) (View, error) {
	id := uuid.NewString()

	var v View
	switch kind {
	case KindAuth:
		v = newAuth(s.ctx, id, visitor, s.deps)
	case KindLogin:
		v = newLogin(s.ctx, id, visitor, s.deps)
	case KindSignup:
		v = newSignup(s.ctx, id, visitor, s.deps)
	case KindRecovery:
		v = newRecovery(s.ctx, id, visitor, s.deps)
	default:
		return nil, fmt.Errorf("mount %q: %w", kind, ErrUnknownKind)
	}

	s.mu.Lock()
	s.views[id] = v
	s.mu.Unlock()

	s.deps.Logger.Debug("View mounted", "view", id, "kind", kind, "visitor", visitor)
	return v, nil
}

// Get returns the view with id if it belongs to visitor and records activity.
func (s *Store) Get(id, visitor string) (View, error) {
	s.mu.RLock()
	v, ok := s.views[id]
	s.mu.RUnlock()
	if !ok || v.Visitor() != visitor {
		return nil, ErrViewNotFound
	}
	v.Touch()
	return v, nil
}

// Lookup returns the view with id as a T, or ErrWrongKind if it is a
// different kind of view.
func Lookup[T View](s *Store, id, visitor string) (T, error) {
	var zero T
	v, err := s.Get(id, visitor)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, ErrWrongKind
	}
	return t, nil
}

// Unmount closes and forgets the view.
func (s *Store) Unmount(id, visitor string) error {
	s.mu.Lock()
	v, ok := s.views[id]
	if !ok || v.Visitor() != visitor {
		s.mu.Unlock()
		return ErrViewNotFound
	}
	delete(s.views, id)
	s.mu.Unlock()

	v.Close()
	s.deps.Logger.Debug("View unmounted", "view", id, "kind", v.Kind())
	return nil
}

// Len returns the number of mounted views.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// Reap unmounts views idle since before now minus the TTL and returns how
// many were removed.
func (s *Store) Reap(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	var stale []View
	s.mu.Lock()
	for id, v := range s.views {
		if v.LastActive().Before(cutoff) {
			stale = append(stale, v)
			delete(s.views, id)
		}
	}
	s.mu.Unlock()

	for _, v := range stale {
		v.Close()
	}
	if len(stale) > 0 {
		s.deps.Logger.Info("Reaped idle views", "count", len(stale))
	}
	return len(stale)
}

// Run reaps idle views periodically until ctx is cancelled or the store
// closes.
func (s *Store) Run(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			s.Reap(now)
		}
	}
}

// Close unmounts every view.
func (s *Store) Close() {
	s.mu.Lock()
	all := make([]View, 0, len(s.views))
	for _, v := range s.views {
		all = append(all, v)
	}
	s.views = make(map[string]View)
	s.mu.Unlock()

	s.cancel()
	for _, v := range all {
		v.Close()
	}
}
