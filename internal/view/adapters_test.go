package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents/html"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	var buf bytes.Buffer
	err := AdaptGomponentToTempl(html.Span(html.Class("x"))).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `<span class="x"></span>`, buf.String())

	buf.Reset()
	require.NoError(t, AdaptGomponentToTempl(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}
