// Package stream pushes timer-driven view changes to the browser. Views
// publish changes on the bus; the WebSocket handler subscribed to a view's
// topic renders each change into an htmx out-of-band fragment.
package stream

import (
	"context"
	"log/slog"

	"github.com/agrogen/agrogen/internal/pubsub"
	"github.com/agrogen/agrogen/internal/views"
)

// Topic returns the bus topic carrying changes for a view.
func Topic(viewID string) string {
	return "views." + viewID
}

// Event returns the typed bus event for a view.
func Event(viewID string) pubsub.Event[views.Change] {
	return pubsub.NewEvent[views.Change](Topic(viewID))
}

// Notifier publishes view changes onto the bus. It implements
// views.Notifier.
type Notifier struct {
	pub    pubsub.Publisher
	logger *slog.Logger
}

var _ views.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier publishing to pub.
func NewNotifier(pub pubsub.Publisher, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{pub: pub, logger: logger}
}

// Notify implements views.Notifier. Publishing is best effort; a change no
// one is listening to is simply dropped.
func (n *Notifier) Notify(ctx context.Context, ch views.Change) {
	if err := pubsub.Publish(ctx, n.pub, Event(ch.ViewID), ch.Visitor, ch); err != nil {
		n.logger.Warn("Failed to publish view change", "view", ch.ViewID, "kind", ch.Kind, "error", err)
	}
}
