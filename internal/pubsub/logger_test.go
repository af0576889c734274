package pubsub

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDefaultLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestWatermillBridge_UnsubscribedPublishIsQuietAtInfo(t *testing.T) {
	buf := useDefaultLogger(t, slog.LevelInfo)
	bridge := NewWatermillBridge()
	defer bridge.Close()

	for range 20 {
		require.NoError(t, bridge.Publish(context.Background(), Message{Topic: "views.nobody", Payload: []byte(`{}`)}))
	}

	assert.NotContains(t, buf.String(), "No subscribers")
}

func TestWatermillBridge_BusActivityLogsAtDebug(t *testing.T) {
	buf := useDefaultLogger(t, slog.LevelDebug)
	bridge := NewWatermillBridge()
	defer bridge.Close()

	require.NoError(t, bridge.Publish(context.Background(), Message{Topic: "views.nobody", Payload: []byte(`{}`)}))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="No subscribers to send message"`)
	assert.Contains(t, buf.String(), "component=watermill")
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger).With(watermill.LogFields{"topic": "views.abc"})

	adapter.Error("Publish failed", errors.New("closed"), nil)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "topic=views.abc")
	assert.Contains(t, buf.String(), "error=closed")

	buf.Reset()
	adapter.Trace("Sending message", watermill.LogFields{"uuid": "m1"})
	assert.Empty(t, buf.String(), "trace sits below debug")

	adapter.Info("Subscribing", nil)
	assert.Contains(t, buf.String(), "level=DEBUG")
}
