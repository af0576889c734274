package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agrogen/agrogen/internal/middleware"
	"github.com/agrogen/agrogen/internal/pubsub"
	"github.com/agrogen/agrogen/internal/rendering"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVisitor = "visitor-1"

type fixture struct {
	store  *views.Store
	server *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithDelays(t, 20*time.Millisecond, 15*time.Millisecond)
}

func newFixtureWithDelays(t *testing.T, submit, redirect time.Duration) *fixture {
	t.Helper()

	bus := pubsub.NewWatermillBridge()
	store := views.NewStore(views.Deps{
		Notifier:      NewNotifier(bus, nil),
		LeafCount:     3,
		LeafTick:      5 * time.Millisecond,
		SubmitDelay:   submit,
		RedirectDelay: redirect,
	}, 0)
	handler := NewHandler(store, bus, rendering.NewUniversalRenderer())

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.VisitorContextKey, testVisitor)
			return next(c)
		}
	})
	e.GET("/views/:id/stream", handler.Serve)
	server := httptest.NewServer(e)

	t.Cleanup(func() {
		handler.Close()
		server.Close()
		store.Close()
		_ = bus.Close()
	})
	return &fixture{store: store, server: server}
}

func (f *fixture) dial(t *testing.T, id string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/views/" + id + "/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUntil(t *testing.T, conn *websocket.Conn, substr string) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %q", substr)
		if strings.Contains(string(msg), substr) {
			return string(msg)
		}
	}
}

func TestStream_PushesLeafFrames(t *testing.T) {
	f := newFixture(t)
	v, err := f.store.Mount(views.KindAuth, testVisitor)
	require.NoError(t, err)

	conn := f.dial(t, v.ID())
	msg := readUntil(t, conn, `id="leaf-field"`)

	assert.Contains(t, msg, `hx-swap-oob="true"`)
	assert.Equal(t, 3, strings.Count(msg, "<svg"), "one icon per leaf")
}

func TestStream_SubmissionPushesStatusThenNavigates(t *testing.T) {
	f := newFixture(t)
	v, err := f.store.Mount(views.KindAuth, testVisitor)
	require.NoError(t, err)
	auth := v.(*views.Auth)

	conn := f.dial(t, v.ID())
	readUntil(t, conn, `id="leaf-field"`)

	require.True(t, auth.SubmitLogin())

	msg := readUntil(t, conn, "Redirecting you to AgroGen")
	assert.Contains(t, msg, `id="auth-card"`)

	nav := readUntil(t, conn, `id="nav-signal"`)
	assert.Contains(t, nav, `hx-get="/dashboard"`)
	assert.Contains(t, nav, `hx-push-url="true"`)

	// The server closes the stream and releases the view after navigating.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected close: %v", err)
			break
		}
	}
	assert.Eventually(t, func() bool { return f.store.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestStream_ReconnectReplaysMissedNavigation(t *testing.T) {
	f := newFixture(t)
	v, err := f.store.Mount(views.KindAuth, testVisitor)
	require.NoError(t, err)
	auth := v.(*views.Auth)

	// The whole submission runs while no stream is connected.
	require.True(t, auth.SubmitLogin())
	require.Eventually(t, func() bool { return auth.Snapshot().Status.Navigated }, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, "/dashboard", auth.Snapshot().Status.Destination)

	conn := f.dial(t, v.ID())
	msg := readUntil(t, conn, "Redirecting you to AgroGen")
	assert.Contains(t, msg, `id="auth-card"`)

	nav := readUntil(t, conn, `id="nav-signal"`)
	assert.Contains(t, nav, `hx-get="/dashboard"`)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected close: %v", err)
			break
		}
	}
	assert.Eventually(t, func() bool { return f.store.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestStream_ReconnectReplaysLoadingStatus(t *testing.T) {
	f := newFixtureWithDelays(t, time.Minute, time.Minute)
	v, err := f.store.Mount(views.KindAuth, testVisitor)
	require.NoError(t, err)
	require.True(t, v.(*views.Auth).SubmitLogin())

	conn := f.dial(t, v.ID())
	msg := readUntil(t, conn, "Processing...")
	assert.Contains(t, msg, `id="auth-card"`)
	assert.Contains(t, msg, `hx-swap-oob="true"`)
}

func TestStream_IdleViewGetsNoReplay(t *testing.T) {
	f := newFixture(t)
	v, err := f.store.Mount(views.KindAuth, testVisitor)
	require.NoError(t, err)

	conn := f.dial(t, v.ID())
	// The first message is a leaf frame, not a replayed card.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `id="leaf-field"`)
	assert.NotContains(t, string(msg), `id="auth-card"`)
}

func TestStream_RejectsUnknownOrStaticViews(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.server.URL + "/views/missing/stream")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	login, err := f.store.Mount(views.KindLogin, testVisitor)
	require.NoError(t, err)
	resp, err = http.Get(f.server.URL + "/views/" + login.ID() + "/stream")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	foreign, err := f.store.Mount(views.KindAuth, "someone-else")
	require.NoError(t, err)
	resp, err = http.Get(f.server.URL + "/views/" + foreign.ID() + "/stream")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFragment(t *testing.T) {
	store := views.NewStore(views.Deps{LeafCount: 2}, 0)
	t.Cleanup(store.Close)

	recovery, err := store.Mount(views.KindRecovery, testVisitor)
	require.NoError(t, err)
	login, err := store.Mount(views.KindLogin, testVisitor)
	require.NoError(t, err)

	node, err := Fragment(recovery, views.Change{Kind: views.ChangeFrame})
	require.NoError(t, err)
	out, err := rendering.NewUniversalRenderer().RenderComponent(t.Context(), node)
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="leaf-field"`)

	_, err = Fragment(recovery, views.Change{Kind: views.ChangeStatus})
	assert.ErrorIs(t, err, errNoFragment)
	_, err = Fragment(login, views.Change{Kind: views.ChangeFrame})
	assert.ErrorIs(t, err, errNoFragment)

	node, err = Fragment(login, views.Change{Kind: views.ChangeNavigate, Destination: "/dashboard"})
	require.NoError(t, err)
	assert.NotNil(t, node)
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "views.abc", Topic("abc"))
	assert.Equal(t, "views.abc", Event("abc").Name())
}
