package assets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memAssets(t *testing.T) (afero.Fs, *Assets) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/css/app.css", []byte("body{}"), 0o644))
	a, err := NewFromFs(mem, "")
	require.NoError(t, err)
	return mem, a
}

func TestVersionFollowsContent(t *testing.T) {
	mem, a := memAssets(t)
	before := a.Version()
	require.NotEmpty(t, before)

	require.NoError(t, a.Refresh())
	assert.Equal(t, before, a.Version(), "unchanged files keep the version")

	require.NoError(t, afero.WriteFile(mem, "/css/app.css", []byte("body{color:green}"), 0o644))
	require.NoError(t, a.Refresh())
	assert.NotEqual(t, before, a.Version())
}

func TestHandlerServesFiles(t *testing.T) {
	_, a := memAssets(t)
	srv := httptest.NewServer(http.StripPrefix("/static/", a.Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/css/app.css")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{}", string(body))
}

func TestNew_Embedded(t *testing.T) {
	embedded := fstest.MapFS{
		"css/app.css": {Data: []byte("a{}")},
		"js/app.js":   {Data: []byte("1")},
	}
	a, err := New(embedded, "")
	require.NoError(t, err)

	ok, err := afero.Exists(a.fs, "/js/app.js")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, a.Watch(context.Background()), "embedded trees are not watched")
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(nil, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestMiddlewareAndURL(t *testing.T) {
	_, a := memAssets(t)
	e := echo.New()
	var got string
	e.GET("/", func(c echo.Context) error {
		got = URL(c.Request().Context(), "/static/css/app.css")
		return nil
	}, a.Middleware())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "/static/css/app.css?v="+a.Version(), got)
	assert.Equal(t, "/x.js", URL(context.Background(), "/x.js"))
}

func TestWatch_BumpsVersionOnChange(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.css")
	require.NoError(t, os.WriteFile(file, []byte("a{}"), 0o644))

	a, err := New(nil, dir)
	require.NoError(t, err)
	before := a.Version()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		// Keep writing until the watcher has registered the directory.
		_ = os.WriteFile(file, []byte("a{color:red}"), 0o644)
		return a.Version() != before
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
