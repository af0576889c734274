package views_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/agrogen/agrogen/internal/focus"
	"github.com/agrogen/agrogen/internal/testutils"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const visitor = "visitor-1"

// changeLog records notifications.
type changeLog struct {
	mu      sync.Mutex
	changes []views.Change
}

func (c *changeLog) Notify(_ context.Context, ch views.Change) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changes = append(c.changes, ch)
}

func (c *changeLog) count(kind views.ChangeKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ch := range c.changes {
		if ch.Kind == kind {
			n++
		}
	}
	return n
}

func (c *changeLog) destinations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, ch := range c.changes {
		if ch.Kind == views.ChangeNavigate {
			out = append(out, ch.Destination)
		}
	}
	return out
}

type fixture struct {
	store *views.Store
	clock *testutils.FakeClock
	log   *changeLog
	out   *bytes.Buffer
}

func newFixture(t *testing.T, leafCount int) *fixture {
	t.Helper()
	f := &fixture{clock: testutils.NewFakeClock(), log: &changeLog{}, out: &bytes.Buffer{}}
	f.store = views.NewStore(views.Deps{
		Notifier:      f.log,
		Clock:         f.clock,
		Logger:        slog.New(slog.NewTextHandler(f.out, nil)),
		LeafCount:     leafCount,
		LeafTick:      time.Millisecond,
		SubmitDelay:   2 * time.Second,
		RedirectDelay: 1500 * time.Millisecond,
	}, time.Minute)
	t.Cleanup(f.store.Close)
	return f
}

func mount[T views.View](t *testing.T, s *views.Store, kind views.Kind) T {
	t.Helper()
	v, err := s.Mount(kind, visitor)
	require.NoError(t, err)
	typed, ok := v.(T)
	require.True(t, ok, "mounted %T", v)
	return typed
}

func TestAuth_PanelToggleKeepsFields(t *testing.T) {
	f := newFixture(t, 0)
	a := mount[*views.Auth](t, f.store, views.KindAuth)

	a.ShowSignUpPanel(true)
	require.NoError(t, a.SetField(focus.Name, "Jane"))
	a.ShowSignUpPanel(false)
	require.NoError(t, a.SetField(focus.Email, "jane@agrogen.com"))
	a.ShowSignUpPanel(true)

	st := a.Snapshot()
	assert.True(t, st.ShowSignUp)
	assert.Equal(t, "Jane", st.Name)
	assert.Equal(t, "jane@agrogen.com", st.Email)
}

func TestAuth_PasswordToggleTwiceRestores(t *testing.T) {
	f := newFixture(t, 0)
	a := mount[*views.Auth](t, f.store, views.KindAuth)

	assert.Equal(t, "password", a.Snapshot().PasswordType())
	a.TogglePassword()
	assert.Equal(t, "text", a.Snapshot().PasswordType())
	a.TogglePassword()
	assert.Equal(t, "password", a.Snapshot().PasswordType())
}

func TestAuth_FocusDrivesIcon(t *testing.T) {
	f := newFixture(t, 0)
	a := mount[*views.Auth](t, f.store, views.KindAuth)

	require.NoError(t, a.Focus(focus.Password))
	st := a.Snapshot()
	assert.True(t, st.Icon.Pulsing)
	assert.Equal(t, 20.0, st.Icon.X)

	require.NoError(t, a.Blur(focus.Password))
	assert.Equal(t, focus.Neutral, a.Snapshot().Icon)

	assert.ErrorIs(t, a.Focus(focus.Field("zip")), views.ErrUnknownField)
}

func TestAuth_LoginSubmissionFlow(t *testing.T) {
	f := newFixture(t, 0)
	a := mount[*views.Auth](t, f.store, views.KindAuth)
	require.NoError(t, a.SetField(focus.Email, "farmer@agrogen.com"))
	require.NoError(t, a.SetField(focus.Password, "secret"))

	require.True(t, a.SubmitLogin())
	assert.True(t, a.Snapshot().Status.Loading)
	assert.False(t, a.SubmitSignUp(), "second submit is ignored while loading")

	require.Eventually(t, func() bool { return f.clock.Pending() == 1 }, time.Second, time.Millisecond)
	f.clock.Advance(2 * time.Second)
	require.Eventually(t, func() bool { return a.Snapshot().Status.Succeeded }, time.Second, time.Millisecond)
	assert.False(t, a.Snapshot().Status.Loading)
	assert.Empty(t, f.log.destinations())

	require.Eventually(t, func() bool { return f.clock.Pending() == 1 }, time.Second, time.Millisecond)
	f.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{views.RouteDashboard}, f.log.destinations())
	assert.Equal(t, 2, f.log.count(views.ChangeStatus), "loading and success")
	assert.NotContains(t, f.out.String(), "secret")
}

func TestAuth_UnmountCancelsPendingNavigation(t *testing.T) {
	f := newFixture(t, 0)
	a := mount[*views.Auth](t, f.store, views.KindAuth)

	require.True(t, a.SubmitSignUp())
	require.Eventually(t, func() bool { return f.clock.Pending() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, f.store.Unmount(a.ID(), visitor))

	f.clock.Advance(time.Minute)
	assert.Empty(t, f.log.destinations())
	assert.Equal(t, 1, f.log.count(views.ChangeStatus), "only the loading change was sent")
}

func TestAuth_LeavesAnimateAndStopOnClose(t *testing.T) {
	f := newFixture(t, 3)
	a := mount[*views.Auth](t, f.store, views.KindAuth)
	require.Len(t, a.Snapshot().Leaves, 3)

	a.Watch()
	require.Eventually(t, func() bool { return f.log.count(views.ChangeFrame) >= 3 }, time.Second, time.Millisecond)

	a.Close()
	a.Close() // idempotent
	frames := f.log.count(views.ChangeFrame)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, frames, f.log.count(views.ChangeFrame))
}

func TestAuth_UnwatchedViewPublishesNoFrames(t *testing.T) {
	f := newFixture(t, 3)
	a := mount[*views.Auth](t, f.store, views.KindAuth)
	before := a.Snapshot().Leaves

	time.Sleep(20 * time.Millisecond)

	assert.Zero(t, f.log.count(views.ChangeFrame), "nothing renders frames without a watcher")
	assert.Equal(t, before, a.Snapshot().Leaves, "the field holds still")
}

func TestAuth_WatchersShareTheAnimation(t *testing.T) {
	f := newFixture(t, 3)
	a := mount[*views.Auth](t, f.store, views.KindAuth)

	releaseFirst := a.Watch()
	releaseSecond := a.Watch()
	require.Eventually(t, func() bool { return f.log.count(views.ChangeFrame) >= 1 }, time.Second, time.Millisecond)

	releaseFirst()
	releaseFirst() // only counted once
	n := f.log.count(views.ChangeFrame)
	require.Eventually(t, func() bool { return f.log.count(views.ChangeFrame) > n }, time.Second, time.Millisecond,
		"the remaining watcher keeps the field moving")

	releaseSecond()
	stopped := f.log.count(views.ChangeFrame)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, f.log.count(views.ChangeFrame), "the last release stops the animation")

	// A new watcher resumes it.
	defer a.Watch()()
	require.Eventually(t, func() bool { return f.log.count(views.ChangeFrame) > stopped }, time.Second, time.Millisecond)
}

func TestStandaloneViews_NewMountStartsEmpty(t *testing.T) {
	f := newFixture(t, 0)
	s1 := mount[*views.Signup](t, f.store, views.KindSignup)
	require.NoError(t, s1.SetField(focus.Name, "Jane"))
	require.NoError(t, f.store.Unmount(s1.ID(), visitor))

	s2 := mount[*views.Signup](t, f.store, views.KindSignup)
	assert.Empty(t, s2.Snapshot().Name)
	assert.Len(t, s2.Snapshot().Decorations, 10)
}

func TestLogin_SubmitLogsWithoutPassword(t *testing.T) {
	f := newFixture(t, 0)
	l := mount[*views.Login](t, f.store, views.KindLogin)

	require.NoError(t, l.SetField(focus.Name, "Jane"))
	require.NoError(t, l.SetField(focus.Password, "hunter2"))
	assert.ErrorIs(t, l.SetField(focus.Phone, "555"), views.ErrUnknownField)
	l.ToggleRemember()
	l.Submit()

	out := f.out.String()
	assert.Contains(t, out, "Standalone login submitted")
	assert.Contains(t, out, "name=Jane")
	assert.Contains(t, out, "remember_me=true")
	assert.NotContains(t, out, "hunter2")
}

func TestSignup_SubmitLogs(t *testing.T) {
	f := newFixture(t, 0)
	s := mount[*views.Signup](t, f.store, views.KindSignup)
	for field, value := range map[focus.Field]string{
		focus.Name: "Jane", focus.Email: "jane@agrogen.com", focus.Phone: "+1 555", focus.Password: "pw",
	} {
		require.NoError(t, s.SetField(field, value))
	}
	s.TogglePassword()
	s.Submit()

	assert.Equal(t, "text", s.Snapshot().PasswordType())
	assert.Contains(t, f.out.String(), "Standalone signup submitted")
	assert.Contains(t, f.out.String(), "email=jane@agrogen.com")
}

func TestRecovery_SubmittedPanel(t *testing.T) {
	f := newFixture(t, 0)
	r := mount[*views.Recovery](t, f.store, views.KindRecovery)

	require.NoError(t, r.SetField(focus.Email, "farmer@agrogen.com"))
	assert.ErrorIs(t, r.SetField(focus.Name, "x"), views.ErrUnknownField)
	require.NoError(t, r.Focus(focus.Email))
	st := r.Snapshot()
	assert.True(t, st.Focused)
	assert.Equal(t, -20.0, st.Icon.X)
	assert.False(t, st.Submitted)

	r.Submit()
	assert.True(t, r.Snapshot().Submitted)
	assert.Contains(t, f.out.String(), "Password reset requested")

	r.TryAnother()
	st = r.Snapshot()
	assert.False(t, st.Submitted)
	assert.Equal(t, "farmer@agrogen.com", st.Email)
}
