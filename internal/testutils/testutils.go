package testutils

import (
	"testing"

	"github.com/agrogen/agrogen/internal/config"
)

// ConfigForTests returns a configuration with short delays and a fixed
// session secret. Values are applied with t.Setenv so they are restored
// when the test ends.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	env := map[string]string{
		"APP_ENV":        "test",
		"SERVER_ADDR":    "127.0.0.1:0",
		"SESSION_SECRET": "a-very-secret-key-for-testing-!",
		"STATIC_DIR":     "",
		"LEAF_COUNT":     "4",
		"LEAF_TICK":      "5ms",
		"SUBMIT_DELAY":   "20ms",
		"REDIRECT_DELAY": "15ms",
		"VIEW_TTL":       "1m",
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	return config.FromEnv()
}
