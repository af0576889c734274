// Package assets serves the static files and tracks a content version used
// to bust browser caches when the files change.
package assets

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
)

type versionKey struct{}

// Assets is a read-only static file tree plus its current version.
type Assets struct {
	fs      afero.Fs
	dir     string
	version atomic.Value
}

// New serves dir from disk when set, otherwise the embedded tree.
// embedded must be rooted at the static directory.
func New(embedded fs.FS, dir string) (*Assets, error) {
	var afs afero.Fs
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %q is not a directory", dir)
		}
		afs = afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	} else {
		mem, err := copyToMem(embedded)
		if err != nil {
			return nil, err
		}
		afs = afero.NewReadOnlyFs(mem)
	}
	return NewFromFs(afs, dir)
}

// copyToMem loads an fs.FS into a MemMapFs so the tree can be addressed with
// rooted paths like the disk tree.
func copyToMem(src fs.FS) (afero.Fs, error) {
	mem := afero.NewMemMapFs()
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return mem.MkdirAll("/"+path, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return afero.WriteFile(mem, "/"+path, data, 0o644)
	})
	if err != nil {
		return nil, fmt.Errorf("load embedded assets: %w", err)
	}
	return mem, nil
}

// NewFromFs wraps an existing afero filesystem. dir is only used by Watch.
func NewFromFs(afs afero.Fs, dir string) (*Assets, error) {
	a := &Assets{fs: afs, dir: dir}
	if err := a.Refresh(); err != nil {
		return nil, err
	}
	return a, nil
}

// Version returns the current content version.
func (a *Assets) Version() string {
	v, _ := a.version.Load().(string)
	return v
}

// Refresh recomputes the version from the file contents.
func (a *Assets) Refresh() error {
	h := fnv.New64a()
	err := afero.Walk(a.fs, "/", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		f, err := a.fs.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, _ = io.WriteString(h, path)
		_, err = io.Copy(h, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("hash static assets: %w", err)
	}
	a.version.Store(fmt.Sprintf("%x", h.Sum64()))
	return nil
}

// Handler serves the tree; mount it with the /static/ prefix stripped.
func (a *Assets) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(a.fs).Dir("/"))
}

// Middleware exposes the current version to templates through the request
// context.
func (a *Assets) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(WithVersion(req.Context(), a.Version())))
			return next(c)
		}
	}
}

// Watch refreshes the version whenever a file under the static dir changes.
// It is a no-op for the embedded tree and returns when ctx is done.
func (a *Assets) Watch(ctx context.Context) error {
	if a.dir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify is not recursive.
	err = filepath.WalkDir(a.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", a.dir, err)
	}
	slog.Info("Watching static assets", "dir", a.dir, "version", a.Version())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = watcher.Add(ev.Name)
				}
			}
			if err := a.Refresh(); err != nil {
				slog.Warn("Failed to refresh asset version", "error", err)
				continue
			}
			slog.Debug("Static assets changed", "file", ev.Name, "op", ev.Op.String(), "version", a.Version())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Asset watcher error", "error", err)
		}
	}
}

// WithVersion stores an asset version in ctx.
func WithVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, versionKey{}, version)
}

// URL appends the asset version from ctx to path as a query string.
func URL(ctx context.Context, path string) string {
	if v, ok := ctx.Value(versionKey{}).(string); ok && v != "" {
		return path + "?v=" + v
	}
	return path
}
