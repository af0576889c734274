package server

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/agrogen/agrogen/internal/assets"
	"github.com/agrogen/agrogen/internal/config"
	"github.com/agrogen/agrogen/internal/handlers"
	appmiddleware "github.com/agrogen/agrogen/internal/middleware"
	"github.com/agrogen/agrogen/internal/pubsub"
	"github.com/agrogen/agrogen/internal/rendering"
	"github.com/agrogen/agrogen/internal/stream"
	"github.com/agrogen/agrogen/internal/views"
	"github.com/agrogen/agrogen/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E      *echo.Echo
	Cfg    config.Provider
	Store  *views.Store
	Bus    *pubsub.WatermillBridge
	Assets *assets.Assets

	pageHandler   *handlers.PageHandler
	viewHandler   *handlers.ViewHandler
	streamHandler *stream.Handler
}

// New wires the view store, message bus, assets and echo instance. Routes
// are registered by RegisterRoutes.
func New(cfg config.Provider) (*Server, error) {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static tree: %w", err)
	}
	staticAssets, err := assets.New(static, cfg.GetStaticDir())
	if err != nil {
		return nil, err
	}

	bus := pubsub.NewWatermillBridge()
	store := views.NewStore(views.Deps{
		Notifier:      stream.NewNotifier(bus, slog.Default()),
		Logger:        slog.Default(),
		LeafCount:     cfg.GetLeafCount(),
		LeafTick:      cfg.GetLeafTick(),
		SubmitDelay:   cfg.GetSubmitDelay(),
		RedirectDelay: cfg.GetRedirectDelay(),
	}, cfg.GetViewTTL())

	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	// The session only carries the anonymous visitor id.
	cookieStore := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GetAppEnv() == "production",
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(cookieStore))
	e.Use(appmiddleware.Visitor())
	e.Use(appmiddleware.Logger)
	e.Use(staticAssets.Middleware())

	return &Server{
		E:             e,
		Cfg:           cfg,
		Store:         store,
		Bus:           bus,
		Assets:        staticAssets,
		pageHandler:   handlers.NewPageHandler(store),
		viewHandler:   handlers.NewViewHandler(store),
		streamHandler: stream.NewHandler(store, bus, renderer),
	}, nil
}
