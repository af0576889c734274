package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), html.P(gomponents.Text("leaf")))
	require.NoError(t, err)
	assert.Equal(t, "<p>leaf</p>", string(out))

	tc := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<b>sprout</b>")
		return err
	})
	out, err = r.RenderComponent(context.Background(), tc)
	require.NoError(t, err)
	assert.Equal(t, "<b>sprout</b>", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.Error(t, err)
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewUniversalRenderer().RenderPage(c, http.StatusUnprocessableEntity, html.Div(gomponents.Text("x"))))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<div>x</div>", rec.Body.String())
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.Render(http.StatusOK, "", html.Span(gomponents.Text("ok"))))
	assert.Equal(t, "<span>ok</span>", rec.Body.String())
}
