package stream

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const (
	writeTimeout = 10 * time.Second
	sendBuffer   = 16
)

// outbound is one rendered fragment. A final message closes the connection
// once written.
type outbound struct {
	payload []byte
	final   bool
}

// client owns one WebSocket connection.
type client struct {
	viewID string
	conn   *websocket.Conn
	send   chan outbound
	logger *slog.Logger
}

func newClient(viewID string, conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		viewID: viewID,
		conn:   conn,
		send:   make(chan outbound, sendBuffer),
		logger: logger,
	}
}

// offer queues a frame without blocking. Frames render the latest state, so
// dropping one behind a slow reader loses nothing.
func (c *client) offer(payload []byte) bool {
	select {
	case c.send <- outbound{payload: payload}:
		return true
	default:
		return false
	}
}

// deliver queues a message that must not be dropped.
func (c *client) deliver(ctx context.Context, msg outbound) error {
	select {
	case c.send <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readPump discards client messages and cancels the connection context when
// the peer goes away.
func (c *client) readPump(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			switch {
			case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
				c.logger.Debug("View stream closed by client", "view", c.viewID)
			case errors.Is(err, context.Canceled) || errors.Is(err, io.EOF):
			default:
				c.logger.Debug("View stream read error", "view", c.viewID, "error", err)
			}
			return
		}
	}
}

// writePump writes queued messages until ctx ends, a write fails or a final
// message has been sent.
func (c *client) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.conn.Close(websocket.StatusNormalClosure, "")
			return
		case msg := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, msg.payload)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					c.logger.Warn("View stream write error", "view", c.viewID, "error", err)
				}
				c.conn.CloseNow()
				return
			}
			if msg.final {
				c.conn.Close(websocket.StatusNormalClosure, "navigated")
				return
			}
		}
	}
}
