package main

import (
	"log/slog"
	"os"

	"github.com/agrogen/agrogen/internal/config"
	"github.com/agrogen/agrogen/internal/logging"
	"github.com/agrogen/agrogen/internal/server"
)

// bootstrap loads configuration and then logging, since .env may set
// LOG_FORMAT and LOG_LEVEL.
func bootstrap() *config.Config {
	cfg := config.New()
	logging.New()
	return cfg
}

func main() {
	cfg := bootstrap()

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	if err := s.Start(cfg.GetServerAddr()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
