package stream

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/agrogen/agrogen/internal/middleware"
	"github.com/agrogen/agrogen/internal/pubsub"
	"github.com/agrogen/agrogen/internal/rendering"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web/src/templates/components"
	"github.com/agrogen/agrogen/web/src/templates/pages"
	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Handler upgrades GET /views/:id/stream and forwards the view's changes.
type Handler struct {
	store    *views.Store
	sub      pubsub.Subscriber
	renderer rendering.Renderer

	// Hijacked connections outlive http.Server.Shutdown; closing the
	// handler ends them.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHandler creates a stream Handler.
func NewHandler(store *views.Store, sub pubsub.Subscriber, renderer rendering.Renderer) *Handler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Handler{store: store, sub: sub, renderer: renderer, ctx: ctx, cancel: cancel}
}

// Close ends every open stream.
func (h *Handler) Close() {
	h.cancel()
}

// Serve handles one stream connection. It blocks until the connection ends
// because the request context dies with the handler.
func (h *Handler) Serve(c echo.Context) error {
	id := c.Param("id")
	visitor := middleware.VisitorID(c)
	logger := middleware.FromContext(c.Request().Context()).With("view", id)

	v, err := h.store.Get(id, visitor)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "view not found")
	}
	if v.Kind() != views.KindAuth && v.Kind() != views.KindRecovery {
		return echo.NewHTTPError(http.StatusNotFound, "view has no stream")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the error response.
		logger.Warn("Failed to upgrade view stream", "error", err)
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	stop := context.AfterFunc(h.ctx, cancel)
	defer stop()

	cl := newClient(id, conn, logger)
	err = pubsub.Subscribe(ctx, h.sub, Event(id), func(ctx context.Context, ch views.Change) error {
		return h.forward(ctx, cl, v, ch)
	})
	if err != nil {
		conn.Close(websocket.StatusInternalError, "subscribe failed")
		return err
	}

	if w, ok := v.(views.Watcher); ok {
		defer w.Watch()()
	}

	logger.Debug("View stream connected", "kind", v.Kind())
	go cl.readPump(ctx, cancel)
	go h.catchUp(ctx, cl, v, logger)
	cl.writePump(ctx)
	logger.Debug("View stream disconnected")
	return nil
}

func (h *Handler) forward(ctx context.Context, cl *client, v views.View, ch views.Change) error {
	if ch.Visitor != v.Visitor() {
		return nil
	}

	node, err := Fragment(v, ch)
	if err != nil {
		return err
	}
	payload, err := h.renderer.RenderComponent(ctx, node)
	if err != nil {
		return err
	}

	switch ch.Kind {
	case views.ChangeFrame:
		if cl.offer(payload) {
			v.Touch()
		}
		return nil
	case views.ChangeNavigate:
		if err := cl.deliver(ctx, outbound{payload: payload, final: true}); err != nil {
			return err
		}
		// The browser leaves this view; release it now.
		if err := h.store.Unmount(v.ID(), v.Visitor()); err != nil && !errors.Is(err, views.ErrViewNotFound) {
			return err
		}
		return nil
	default:
		return cl.deliver(ctx, outbound{payload: payload})
	}
}

// catchUp replays submission progress published while no stream was
// subscribed, such as during an htmx reconnect. It runs after Subscribe so a
// change is either replayed here or forwarded live.
func (h *Handler) catchUp(ctx context.Context, cl *client, v views.View, logger *slog.Logger) {
	auth, ok := v.(*views.Auth)
	if !ok {
		return
	}
	st := auth.Snapshot().Status
	if st.Idle() && st.Failure == "" {
		return
	}

	changes := []views.Change{{ViewID: v.ID(), Visitor: v.Visitor(), Kind: views.ChangeStatus}}
	if st.Navigated {
		changes = append(changes, views.Change{
			ViewID:      v.ID(),
			Visitor:     v.Visitor(),
			Kind:        views.ChangeNavigate,
			Destination: st.Destination,
		})
	}
	for _, ch := range changes {
		if err := h.forward(ctx, cl, v, ch); err != nil {
			if ctx.Err() == nil {
				logger.Warn("Failed to replay view change", "kind", ch.Kind, "error", err)
			}
			return
		}
	}
}

// errNoFragment is returned for changes a view kind never produces.
var errNoFragment = errors.New("stream: no fragment for change")

// Fragment renders a change as an out-of-band htmx fragment.
func Fragment(v views.View, ch views.Change) (gomponents.Node, error) {
	switch ch.Kind {
	case views.ChangeNavigate:
		return components.Navigate(ch.Destination), nil
	case views.ChangeFrame:
		switch t := v.(type) {
		case *views.Auth:
			return components.LeafField(t.Snapshot().Leaves, true), nil
		case *views.Recovery:
			return components.LeafField(t.Snapshot().Leaves, true), nil
		}
	case views.ChangeStatus:
		if t, ok := v.(*views.Auth); ok {
			return pages.AuthStatus(t.Snapshot()), nil
		}
	}
	slog.Debug("Dropping change without fragment", "view", ch.ViewID, "kind", ch.Kind)
	return nil, errNoFragment
}
