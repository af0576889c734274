package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal arrives.
func (s *Server) Start(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx, addr)
}

// Run serves on addr with the background reaper and, outside production,
// the static asset watcher. It shuts down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	bg, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.Store.Run(bg)
	if s.Cfg.GetAppEnv() != "production" {
		go func() {
			if err := s.Assets.Watch(bg); err != nil {
				slog.Warn("Static asset watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "env", s.Cfg.GetAppEnv())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.Close()
		if ok {
			return fmt.Errorf("shutting down the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	// Streams are hijacked connections the HTTP server no longer tracks.
	s.streamHandler.Close()
	err := s.E.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close ends open streams, unmounts every view and closes the bus.
func (s *Server) Close() {
	s.streamHandler.Close()
	s.Store.Close()
	if err := s.Bus.Close(); err != nil {
		slog.Warn("Failed to close message bus", "error", err)
	}
}
