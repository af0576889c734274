package components

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
)

func render(t *testing.T, n gomponents.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestPasswordField_TracksInputFocusOnly(t *testing.T) {
	out := render(t, PasswordField(Field{ViewID: "v1", Label: "Password", Tracked: true}, false))

	assert.Contains(t, out, `hx-trigger="focus from:#password"`)
	assert.Contains(t, out, `hx-trigger="blur from:#password"`)
	assert.NotContains(t, out, "focusin", "bubbling focus from the toggle button must not count")
	assert.NotContains(t, out, "focusout")
	assert.Contains(t, out, `hx-post="/views/v1/password-visibility"`)
	assert.Contains(t, out, `type="password"`)
}

func TestPasswordField_ShowsText(t *testing.T) {
	out := render(t, PasswordField(Field{ViewID: "v1", Label: "Password"}, true))

	assert.Contains(t, out, `type="text"`)
	assert.NotContains(t, out, "/views/v1/focus", "untracked fields post no focus changes")
}

func TestTextField_TrackedByName(t *testing.T) {
	out := render(t, TextField(Field{ViewID: "v2", Name: "email", Type: "email", Icon: "mail", Label: "Email", Tracked: true}))

	assert.Contains(t, out, `hx-post="/views/v2/focus"`)
	assert.Contains(t, out, `hx-trigger="focus from:#email"`)
	assert.Contains(t, out, `hx-post="/views/v2/blur"`)
	assert.Contains(t, out, `hx-trigger="blur from:#email"`)
	assert.Contains(t, out, `hx-trigger="input changed delay:150ms"`)
}
