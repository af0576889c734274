package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

// levelTrace sits below debug; watermill traces every message it moves.
const levelTrace = slog.LevelDebug - 4

// slogAdapter routes watermill's logging through slog. Watermill reports
// routine bus activity, such as a publish with no subscribers, at info, so
// info is demoted to debug.
type slogAdapter struct {
	logger *slog.Logger
}

var _ watermill.LoggerAdapter = slogAdapter{}

// NewSlogAdapter wraps logger, or slog.Default when logger is nil.
func NewSlogAdapter(logger *slog.Logger) watermill.LoggerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return slogAdapter{logger: logger.With("component", "watermill")}
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log(slog.LevelError, msg, fields.Add(watermill.LogFields{"error": err}))
}

func (a slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log(slog.LevelDebug, msg, fields)
}

func (a slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log(slog.LevelDebug, msg, fields)
}

func (a slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log(levelTrace, msg, fields)
}

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{logger: a.logger.With(attrs(fields)...)}
}

func (a slogAdapter) log(level slog.Level, msg string, fields watermill.LogFields) {
	ctx := context.Background()
	if !a.logger.Enabled(ctx, level) {
		return
	}
	a.logger.Log(ctx, level, msg, attrs(fields)...)
}

func attrs(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields))
	for k, v := range fields {
		out = append(out, slog.Any(k, v))
	}
	return out
}
