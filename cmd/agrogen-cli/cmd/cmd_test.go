package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "agrogen-cli v"+version+"\n", out)
}

func TestFocus(t *testing.T) {
	t.Run("neutral", func(t *testing.T) {
		out, err := run(t, "focus")
		require.NoError(t, err)
		assert.Contains(t, out, "Focused:   (none)")
		assert.Contains(t, out, "translateX(0px) translateY(0px) rotate(0deg) scale(1)")
		assert.Contains(t, out, "Pulsing:   false")
	})

	t.Run("single field", func(t *testing.T) {
		out, err := run(t, "focus", "password")
		require.NoError(t, err)
		assert.Contains(t, out, "Focused:   Password")
		assert.Contains(t, out, "translateX(20px) translateY(10px) rotate(-15deg) scale(1.2)")
		assert.Contains(t, out, "Pulsing:   true")
	})

	t.Run("priority order wins", func(t *testing.T) {
		out, err := run(t, "focus", "phone", "EMAIL")
		require.NoError(t, err)
		assert.Contains(t, out, "Focused:   Phone, Email")
		assert.Contains(t, out, "translateX(-20px) translateY(10px) rotate(15deg) scale(1.2)")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := run(t, "focus", "address")
		assert.ErrorContains(t, err, `unknown field "address"`)
	})
}

func TestLeaves_JSONFrames(t *testing.T) {
	out, err := run(t, "leaves", "--count", "2", "--ticks", "3", "--seed", "42", "--format", "json")
	require.NoError(t, err)

	var frames []frame
	require.NoError(t, json.Unmarshal([]byte(out), &frames))
	require.Len(t, frames, 2, "first and last frame only")
	assert.Equal(t, uint64(0), frames[0].Tick)
	assert.Equal(t, uint64(3), frames[1].Tick)
	require.Len(t, frames[1].Leaves, 2)

	for i := range frames[0].Leaves {
		// Fresh leaves start above the viewport, so none recycle in 3 ticks.
		assert.InDelta(t, frames[0].Leaves[i].Y+1.5, frames[1].Leaves[i].Y, 1e-9)
		assert.InDelta(t, frames[0].Leaves[i].Rotation+1.5, frames[1].Leaves[i].Rotation, 1e-9)
	}
}

func TestLeaves_SameSeedSameOutput(t *testing.T) {
	first, err := run(t, "leaves", "--count", "4", "--ticks", "50", "--every", "10", "--seed", "7")
	require.NoError(t, err)
	second, err := run(t, "leaves", "--count", "4", "--ticks", "50", "--every", "10", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "tick 0\n")
	assert.Contains(t, first, "tick 10\n")
	assert.Contains(t, first, "tick 50\n")
}

func TestLeaves_RejectsBadInput(t *testing.T) {
	_, err := run(t, "leaves", "--ticks", "-1")
	assert.Error(t, err)

	_, err = run(t, "leaves", "--format", "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRoutes(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	out, err := run(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "METHOD")
	assert.Contains(t, out, "/views/:id/stream")
	assert.Contains(t, out, "Page Handler Auth Get")

	out, err = run(t, "routes", "--method", "delete")
	require.NoError(t, err)
	assert.Contains(t, out, "/views/:id")
	assert.NotContains(t, out, "/views/:id/stream")
	assert.Contains(t, out, "1 routes")
}

func TestHandlerName(t *testing.T) {
	assert.Equal(t, "page handler auth get",
		handlerName("github.com/agrogen/agrogen/internal/handlers.(*PageHandler).AuthGet-fm"))
	assert.Equal(t, "home get", handlerName("github.com/agrogen/agrogen/internal/handlers.HomeGet"))
}
